/*
Package ctx pairs a labelset with a weightset into a validated Context, the
object every automaton and rational expression is built over. A Context
fixes, once and for all, the concrete label type L and weight type W of
everything nested inside it, the same validated-constructor shape a graph
type uses to fix its node/edge representation once at construction and
reject malformed inputs up front rather than catching problems later.
*/
package ctx

import (
	"strings"

	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

// Context couples a labelset and a weightset. It carries no state beyond
// the two algebras; automata and expressions hold a *Context and dispatch
// every label/weight operation through it.
type Context[L any, W any] struct {
	Labels  label.Set[L]
	Weights weightset.Semiring[W]
}

// New validates and builds a Context. It never fails today (no nil checks
// beyond basic soundness) but returns an error to leave room for future
// cross-checks between a labelset and weightset pairing, the way a
// schema parser always returns an error even for inputs that happen to
// never fail its current rule set.
func New[L any, W any](labels label.Set[L], weights weightset.Semiring[W]) (*Context[L, W], error) {
	return &Context[L, W]{Labels: labels, Weights: weights}, nil
}

// HasOne reports whether the empty word is a valid label in this context
// (nullableset, wordset, oneset and tupleset contexts, as opposed to a
// plain letterset).
func (c *Context[L, W]) HasOne() bool { return c.Labels.HasOne() }

// IsFree reports whether the labelset is a free monoid over an explicit
// alphabet (letterset, nullableset, wordset) as opposed to a non-free
// labelset (oneset, tupleset, expressionset).
func (c *Context[L, W]) IsFree() bool {
	switch c.Labels.Kind() {
	case label.LetterKind, label.NullableKind, label.WordKind:
		return true
	default:
		return false
	}
}

// Kind returns the labelset kind, used by algorithms that branch on
// is_lal/is_lan/is_lao/is_lar/is_lat/is_law.
func (c *Context[L, W]) Kind() label.Kind { return c.Labels.Kind() }

// Name is the context's registry name, e.g. "lal_char_b" for a letterset
// over the Boolean semiring.
func (c *Context[L, W]) Name() string {
	prefix := map[label.Kind]string{
		label.LetterKind: "lal_char", label.NullableKind: "lan_char", label.WordKind: "law_char",
		label.OneKind: "lao", label.TupleKind: "lat", label.ExpressionKind: "lar",
	}[c.Kind()]
	ws := strings.ToLower(c.Weights.Name())
	switch ws {
	case "z-min-plus":
		ws = "zmin"
	case "z-max-plus":
		ws = "zmax"
	case "r-max-prod":
		ws = "maxprod"
	}
	return prefix + "_" + ws
}
