package label

import (
	"sort"
	"strconv"

	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// LetterSet is the labelset whose labels are single runes drawn from a
// fixed, sorted alphabet.
type LetterSet struct {
	alphabet []rune
}

var _ Set[rune] = LetterSet{}

// NewLetterSet builds a letterset over the given alphabet, deduplicated
// and sorted for a canonical Print/Compare order.
func NewLetterSet(alphabet []rune) LetterSet {
	seen := make(map[rune]bool, len(alphabet))
	var uniq []rune
	for _, r := range alphabet {
		if !seen[r] {
			seen[r] = true
			uniq = append(uniq, r)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return LetterSet{alphabet: uniq}
}

func (l LetterSet) Kind() Kind { return LetterKind }
func (l LetterSet) Name() string {
	return "letterset<char_letters>"
}

func (l LetterSet) One() rune    { return 0 }
func (l LetterSet) HasOne() bool { return false }
func (l LetterSet) IsOne(r rune) bool { return false }

func (l LetterSet) Equal(a, b rune) bool { return a == b }
func (l LetterSet) Less(a, b rune) bool  { return a < b }

func (l LetterSet) Alphabet() []rune { return l.alphabet }

// InAlphabet reports whether r belongs to the labelset's alphabet.
func (l LetterSet) InAlphabet(r rune) bool {
	for _, a := range l.alphabet {
		if a == r {
			return true
		}
	}
	return false
}

func (l LetterSet) Parse(s string, pos int) (rune, int, error) {
	runes := []rune(s[pos:])
	if len(runes) == 0 {
		return 0, pos, awerr.Parse(pos, "expected a letter, got end of input")
	}
	r := runes[0]
	if !l.InAlphabet(r) {
		return 0, pos, awerr.Parse(pos, "letter %q is not in the alphabet", r)
	}
	return r, pos + len(string(r)), nil
}

func (l LetterSet) Print(r rune) string { return string(r) }

func (l LetterSet) EncodeJSON(r rune) *jsonfmt.Node { return jsonfmt.NewString(string(r)) }

func (l LetterSet) DecodeJSON(n *jsonfmt.Node) (rune, error) {
	s, ok := n.AsString()
	if !ok {
		return 0, awerr.InvalidArg("label", "expected a one-letter string")
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, awerr.InvalidArg("label", "expected a single letter, got "+strconv.Quote(s))
	}
	return runes[0], nil
}
