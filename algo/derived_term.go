package algo

import (
	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/rational"
	"awali.dev/awali/weightset"
)

// exprLabels adapts a context's labelset to rational.Print's atomLabels
// constraint, used to turn a derived expression into the string that
// names its automaton state.
type exprLabels[L any] interface {
	Print(l L) string
	Equal(a, b L) bool
}

// DerivedTerm builds an automaton from e via the Antimirov/Brzozowski
// derived-term construction: states are expressions (reduced modulo
// series identities so the construction terminates on a rational
// expression), the initial state is e itself, and q's transition on
// letter x goes to the derivative of q with respect to x, dq/dx. It is
// specialized to rune labels: the construction walks the context's
// alphabet one letter at a time, and Alphabet() only ever names runes
// regardless of the labelset's value type.
func DerivedTerm[W any](c *ctx.Context[rune, W], e *rational.Expr[rune, W], labels exprLabels[rune]) *automaton.Automaton[rune, W] {
	weights := c.Weights
	a := automaton.New(c)
	seen := map[string]automaton.StateID{}
	var queue []*rational.Expr[rune, W]

	key := func(x *rational.Expr[rune, W]) string { return rational.Print(x, labels, weights) }

	stateOf := func(x *rational.Expr[rune, W]) automaton.StateID {
		k := key(x)
		if id, ok := seen[k]; ok {
			return id
		}
		id := a.AddState(k)
		seen[k] = id
		queue = append(queue, x)
		return id
	}

	reduced := rational.Reduce(e, rational.Series, weights)
	start := stateOf(reduced)
	a.SetInitial(start, weights.One())

	alphabet := c.Labels.Alphabet()

	for i := 0; i < len(queue); i++ {
		q := queue[i]
		qid := seen[key(q)]

		if ct, err := rational.ConstantTerm(q, weights); err == nil && !weights.IsZero(ct) {
			a.SetFinal(qid, ct)
		}

		for _, l := range alphabet {
			d := rational.Reduce(derivative(q, l, weights), rational.Series, weights)
			if d.IsZero() {
				continue
			}
			did := stateOf(d)
			a.NewTransition(qid, did, l, weights.One())
		}
	}
	return a
}

// derivative computes the left-quotient of e by the single letter l: the
// (unreduced) expression matching every suffix w such that l.w is in the
// language of e.
func derivative[W any](e *rational.Expr[rune, W], l rune, weights weightset.Semiring[W]) *rational.Expr[rune, W] {
	switch e.Op {
	case rational.Zero, rational.One:
		return rational.NewZero[rune, W]()
	case rational.Atom:
		if e.Label == l {
			return rational.NewOne[rune, W]()
		}
		return rational.NewZero[rune, W]()
	case rational.Sum:
		return rational.NewSum(derivativeAll(e.Kids, l, weights)...)
	case rational.Shuffle:
		return rational.NewShuffle(derivativeAll(e.Kids, l, weights)...)
	case rational.Conjunction:
		return rational.NewConjunction(derivativeAll(e.Kids, l, weights)...)
	case rational.Prod:
		if len(e.Kids) == 0 {
			return rational.NewZero[rune, W]()
		}
		head := e.Kids[0]
		tail := rational.NewProd(e.Kids[1:]...)
		dHead := derivative(head, l, weights)
		terms := []*rational.Expr[rune, W]{rational.NewProd(append([]*rational.Expr[rune, W]{dHead}, e.Kids[1:]...)...)}
		if ct, err := rational.ConstantTerm(head, weights); err == nil && !weights.IsZero(ct) {
			terms = append(terms, rational.NewLWeight(ct, derivative(tail, l, weights)))
		}
		return rational.NewSum(terms...)
	case rational.Star:
		return rational.NewProd(derivative(e.Sub, l, weights), e)
	case rational.Plus:
		return rational.NewProd(derivative(e.Sub, l, weights), rational.NewStar(e.Sub))
	case rational.Maybe:
		return derivative(e.Sub, l, weights)
	case rational.LWeight:
		return rational.NewLWeight(e.Weight, derivative(e.Sub, l, weights))
	case rational.RWeight:
		return rational.NewRWeight(derivative(e.Sub, l, weights), e.Weight)
	default: // Transposition, Complement, LDiv: not supported by this construction
		return rational.NewZero[rune, W]()
	}
}

func derivativeAll[W any](kids []*rational.Expr[rune, W], l rune, weights weightset.Semiring[W]) []*rational.Expr[rune, W] {
	out := make([]*rational.Expr[rune, W], len(kids))
	for i, k := range kids {
		out[i] = derivative(k, l, weights)
	}
	return out
}
