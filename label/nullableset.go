package label

import (
	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// Nullable is a letter together with an explicit flag marking the
// distinguished epsilon label; it is the value type of a NullableSet.
type Nullable struct {
	IsEpsilon bool
	Letter    rune
}

// NullableSet is the labelset whose labels are single letters or the
// empty word (epsilon), used wherever a context needs epsilon-transitions
// as first-class labels.
type NullableSet struct {
	letters LetterSet
}

var _ Set[Nullable] = NullableSet{}

func NewNullableSet(alphabet []rune) NullableSet {
	return NullableSet{letters: NewLetterSet(alphabet)}
}

func (n NullableSet) Kind() Kind   { return NullableKind }
func (n NullableSet) Name() string { return "nullableset<char_letters>" }
func (n NullableSet) One() Nullable { return Nullable{IsEpsilon: true} }
func (n NullableSet) HasOne() bool  { return true }
func (n NullableSet) IsOne(l Nullable) bool { return l.IsEpsilon }

func (n NullableSet) Alphabet() []rune { return n.letters.Alphabet() }

func (n NullableSet) Equal(a, b Nullable) bool {
	if a.IsEpsilon != b.IsEpsilon {
		return false
	}
	return a.IsEpsilon || a.Letter == b.Letter
}

func (n NullableSet) Less(a, b Nullable) bool {
	if a.IsEpsilon != b.IsEpsilon {
		return a.IsEpsilon
	}
	if a.IsEpsilon {
		return false
	}
	return a.Letter < b.Letter
}

// Parse reads epsilon (an empty match at pos) when the next rune is not in
// the alphabet, otherwise a single letter.
func (n NullableSet) Parse(s string, pos int) (Nullable, int, error) {
	if pos >= len(s) {
		return Nullable{IsEpsilon: true}, pos, nil
	}
	r, p, err := n.letters.Parse(s, pos)
	if err != nil {
		return Nullable{IsEpsilon: true}, pos, nil
	}
	return Nullable{Letter: r}, p, nil
}

func (n NullableSet) Print(l Nullable) string {
	if l.IsEpsilon {
		return "\\e"
	}
	return string(l.Letter)
}

func (n NullableSet) EncodeJSON(l Nullable) *jsonfmt.Node {
	if l.IsEpsilon {
		return jsonfmt.NewString("")
	}
	return jsonfmt.NewString(string(l.Letter))
}

func (n NullableSet) DecodeJSON(node *jsonfmt.Node) (Nullable, error) {
	s, ok := node.AsString()
	if !ok {
		return Nullable{}, awerr.InvalidArg("label", "expected a letter or empty string")
	}
	if s == "" {
		return Nullable{IsEpsilon: true}, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return Nullable{}, awerr.InvalidArg("label", "expected a single letter or empty string")
	}
	return Nullable{Letter: runes[0]}, nil
}
