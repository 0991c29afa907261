/*
Package label implements the labelset abstraction transitions are drawn
from: single letters, words, letters-or-epsilon, the pure-epsilon
singleton, tuples of tapes, and expressions-as-labels.

A labelset layers an alphabet and an explicit epsilon member over a raw
value type, the way a richer dependency-type value layers named
attribute flags over a raw bitmask.
*/
package label

import "awali.dev/awali/jsonfmt"

// Kind discriminates the shape of a labelset: letters, nullable letters,
// the pure-epsilon singleton, tuples, or words.
type Kind int

const (
	// LetterKind: labels are single letters from a finite alphabet.
	LetterKind Kind = iota
	// NullableKind: labels are letters or the empty word (is_lan).
	NullableKind
	// WordKind: labels are words over a finite alphabet (is_law).
	WordKind
	// OneKind: the only label is the empty word (is_lao).
	OneKind
	// TupleKind: labels are tuples of per-tape labels (is_lat).
	TupleKind
	// ExpressionKind: labels are themselves rational expressions.
	ExpressionKind
)

func (k Kind) String() string {
	switch k {
	case LetterKind:
		return "letter"
	case NullableKind:
		return "nullable"
	case WordKind:
		return "word"
	case OneKind:
		return "one"
	case TupleKind:
		return "tuple"
	case ExpressionKind:
		return "expression"
	default:
		return "?"
	}
}

// Set is the labelset algebra: a concrete label type L plus the operations
// an automaton or rational expression needs to manipulate labels of that
// type, independent of which weightset the automaton pairs it with.
type Set[L any] interface {
	Kind() Kind
	// Name is the labelset's registry name, e.g. "letterset<char_letters>".
	Name() string

	// One is the empty-word label. Defined for every labelset (even
	// LetterKind, where it is simply not reachable via Parse of a single
	// letter); HasOne reports whether the labelset's grammar actually
	// admits it as a parseable/transition label.
	One() L
	HasOne() bool
	IsOne(l L) bool

	Equal(a, b L) bool
	Less(a, b L) bool

	// Alphabet lists the letters in scope, for LetterKind/WordKind/
	// NullableKind; nil for labelsets with no fixed letter set.
	Alphabet() []rune

	Parse(s string, pos int) (L, int, error)
	Print(l L) string

	EncodeJSON(l L) *jsonfmt.Node
	DecodeJSON(n *jsonfmt.Node) (L, error)
}
