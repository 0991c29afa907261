package label

import (
	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// Unit is the single inhabitant of a OneSet's label type: there is exactly
// one label, the empty word.
type Unit struct{}

// OneSet is the labelset with no letters at all: its only label is One,
// used for contexts over pure series where weights carry all the
// information and transitions need no alphabet.
type OneSet struct{}

var _ Set[Unit] = OneSet{}

func (OneSet) Kind() Kind        { return OneKind }
func (OneSet) Name() string      { return "oneset" }
func (OneSet) One() Unit         { return Unit{} }
func (OneSet) HasOne() bool      { return true }
func (OneSet) IsOne(Unit) bool   { return true }
func (OneSet) Alphabet() []rune  { return nil }
func (OneSet) Equal(a, b Unit) bool { return true }
func (OneSet) Less(a, b Unit) bool  { return false }

func (OneSet) Parse(s string, pos int) (Unit, int, error) { return Unit{}, pos, nil }
func (OneSet) Print(Unit) string                          { return "\\e" }

func (OneSet) EncodeJSON(Unit) *jsonfmt.Node { return jsonfmt.NewString("") }

func (OneSet) DecodeJSON(n *jsonfmt.Node) (Unit, error) {
	s, ok := n.AsString()
	if !ok || s != "" {
		return Unit{}, awerr.InvalidArg("label", "oneset labels must encode as an empty string")
	}
	return Unit{}, nil
}
