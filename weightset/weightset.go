/*
Package weightset implements the semiring abstraction transition weights
are drawn from: B, N, Z, Q, R, C, F2, Z/nZ, N-bounded, the tropical
(min-plus/max-plus) semirings, R-max-prod and Fuzzy, plus the tuple and
rational-expression composite semirings.

The family of semirings is realized as a Go generic: Semiring[W] fixes a
value type W at compile time, the way a generic cache type fixes its
value type once and reuses the same machinery for every instantiation.
*/
package weightset

import "awali.dev/awali/jsonfmt"

// StarStatus classifies how a semiring's star operator behaves.
type StarStatus int

const (
	// Starrable: star is defined for every value (e.g. B, the tropicals).
	Starrable StarStatus = iota
	// NonStarrable: star is defined only for special values (e.g. Z, N,
	// Z/nZ: only star(zero) converges).
	NonStarrable
	// AbsVal: star is defined whenever the value has absolute value < 1
	// (Q, R, C).
	AbsVal
	// Tops: the semiring has its own closure and star is always total but
	// via that closure (e.g. Fuzzy, R-max-prod bounded to [0,1]).
	Tops
)

func (s StarStatus) String() string {
	switch s {
	case Starrable:
		return "STARRABLE"
	case NonStarrable:
		return "NON_STARRABLE"
	case AbsVal:
		return "ABSVAL"
	case Tops:
		return "TOPS"
	default:
		return "?"
	}
}

// Semiring is the algebra a set of transition weights is drawn from.
type Semiring[W any] interface {
	// Name is the semiring's registry name, e.g. "B", "Z", "Z/3Z".
	Name() string

	Zero() W
	One() W
	Add(a, b W) W
	Mul(a, b W) W
	// Star computes 1 + x + x^2 + ... when it converges; otherwise it
	// returns an error satisfying awerr's NonStarrableErr.
	Star(x W) (W, error)

	Equal(a, b W) bool
	Less(a, b W) bool
	IsZero(w W) bool
	IsOne(w W) bool

	// Conv parses a value starting at s[pos:], returning the value and
	// the position just past what was consumed.
	Conv(s string, pos int) (W, int, error)
	Print(w W) string

	EncodeJSON(w W) *jsonfmt.Node
	DecodeJSON(n *jsonfmt.Node) (W, error)

	// IsCommutative reports whether Mul commutes; almost all concrete
	// semirings here are commutative, series (expression) semirings are
	// not in general.
	IsCommutative() bool
	// ShowOne reports whether a unit weight should be rendered when
	// printing a weighted automaton/expression (B, for instance, does
	// not: an unweighted transition is implicitly weight one).
	ShowOne() bool
	StarStatus() StarStatus
}

// Subtractable is implemented by semirings with an inverse for Add (Z, Q,
// R, C): a ring rather than a mere semiring.
type Subtractable[W any] interface {
	Sub(a, b W) W
}

// Divisible is implemented by semirings with left/right division (Q, R
// and C).
type Divisible[W any] interface {
	LDiv(a, b W) (W, error)
	RDiv(a, b W) (W, error)
}
