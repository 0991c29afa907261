package label

import (
	"strings"

	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// WordSet is the labelset whose labels are (possibly empty) words over a
// fixed alphabet; the empty word is its One.
type WordSet struct {
	letters LetterSet
}

var _ Set[string] = WordSet{}

func NewWordSet(alphabet []rune) WordSet { return WordSet{letters: NewLetterSet(alphabet)} }

func (w WordSet) Kind() Kind     { return WordKind }
func (w WordSet) Name() string   { return "wordset<char_letters>" }
func (w WordSet) One() string    { return "" }
func (w WordSet) HasOne() bool   { return true }
func (w WordSet) IsOne(s string) bool { return s == "" }

func (w WordSet) Equal(a, b string) bool { return a == b }
func (w WordSet) Less(a, b string) bool  { return a < b }

func (w WordSet) Alphabet() []rune { return w.letters.Alphabet() }

// Parse reads a maximal run of alphabet letters starting at pos.
func (w WordSet) Parse(s string, pos int) (string, int, error) {
	var sb strings.Builder
	p := pos
	runes := []rune(s[pos:])
	for _, r := range runes {
		if !w.letters.InAlphabet(r) {
			break
		}
		sb.WriteRune(r)
		p += len(string(r))
	}
	return sb.String(), p, nil
}

func (w WordSet) Print(s string) string { return s }

func (w WordSet) EncodeJSON(s string) *jsonfmt.Node { return jsonfmt.NewString(s) }

func (w WordSet) DecodeJSON(n *jsonfmt.Node) (string, error) {
	s, ok := n.AsString()
	if !ok {
		return "", awerr.InvalidArg("label", "expected a word string")
	}
	for _, r := range s {
		if !w.letters.InAlphabet(r) {
			return "", awerr.Domain("letter %q is not in the word alphabet", r)
		}
	}
	return s, nil
}
