package algo

import (
	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/rational"
)

// ThompsonFrom builds an automaton recognizing e, using the construction
// named in opts.Thompson ("canonical", "compact" or "weighted"). All three
// share the same recursive shape (each sub-expression becomes a fragment
// with one fresh start state and one fresh end state, wired together per
// operator); "compact" additionally collapses a unary operator's wrapper
// states into its child's endpoints when possible, and "weighted" eagerly
// checks that ConstantTerm(e) is starrable in the target weightset,
// rejecting the whole construction otherwise, so it fails at construction
// time, not evaluation time; past that check it builds the same fragments
// as "canonical", a star included as an epsilon loop.
func ThompsonFrom[L, W any](c *ctx.Context[L, W], e *rational.Expr[L, W], opts Options) (*automaton.Automaton[L, W], error) {
	if opts.Thompson == "weighted" {
		if _, err := rational.ConstantTerm(e, c.Weights); err != nil {
			return nil, err
		}
	}
	t := &thompsonBuilder[L, W]{c: c, a: automaton.New(c), compact: opts.Thompson == "compact"}
	start, end := t.build(e)
	t.a.SetInitial(start, c.Weights.One())
	t.a.SetFinal(end, c.Weights.One())
	return t.a, nil
}

type thompsonBuilder[L, W any] struct {
	c       *ctx.Context[L, W]
	a       *automaton.Automaton[L, W]
	compact bool
}

// build recursively constructs e's fragment in t.a and returns its
// (start, end) state pair; the caller is responsible for treating those
// as the overall automaton's initial/final states only at the top level.
func (t *thompsonBuilder[L, W]) build(e *rational.Expr[L, W]) (automaton.StateID, automaton.StateID) {
	one := t.c.Weights.One()
	switch e.Op {
	case rational.Zero:
		return t.a.AddState("i"), t.a.AddState("f")

	case rational.One:
		s, f := t.a.AddState("i"), t.a.AddState("f")
		t.a.NewEpsilonTransition(s, f, one)
		return s, f

	case rational.Atom:
		s, f := t.a.AddState("i"), t.a.AddState("f")
		t.a.NewTransition(s, f, e.Label, one)
		return s, f

	case rational.Sum, rational.Shuffle:
		s, f := t.a.AddState("i"), t.a.AddState("f")
		for _, k := range e.Kids {
			ks, kf := t.build(k)
			t.a.NewEpsilonTransition(s, ks, one)
			t.a.NewEpsilonTransition(kf, f, one)
		}
		return s, f

	case rational.Prod, rational.Conjunction:
		var cur automaton.StateID
		var first automaton.StateID
		for i, k := range e.Kids {
			ks, kf := t.build(k)
			if i == 0 {
				first = ks
			} else {
				t.a.NewEpsilonTransition(cur, ks, one)
			}
			cur = kf
		}
		return first, cur

	case rational.Star:
		ks, kf := t.build(e.Sub)
		if t.compact {
			t.a.NewEpsilonTransition(kf, ks, one)
			return ks, ks
		}
		s := t.a.AddState("i")
		t.a.NewEpsilonTransition(s, ks, one)
		t.a.NewEpsilonTransition(kf, s, one)
		return s, s

	case rational.Plus:
		ks, kf := t.build(e.Sub)
		t.a.NewEpsilonTransition(kf, ks, one)
		return ks, kf

	case rational.Maybe:
		ks, kf := t.build(e.Sub)
		t.a.NewEpsilonTransition(ks, kf, one)
		return ks, kf

	case rational.Complement, rational.Transposition:
		return t.build(e.Sub)

	case rational.LDiv:
		return t.build(e.RHS)

	case rational.LWeight:
		ks, kf := t.build(e.Sub)
		s := t.a.AddState("i")
		t.a.NewEpsilonTransition(s, ks, e.Weight)
		return s, kf

	case rational.RWeight:
		ks, kf := t.build(e.Sub)
		f := t.a.AddState("f")
		t.a.NewEpsilonTransition(kf, f, e.Weight)
		return ks, f

	default:
		return t.a.AddState("i"), t.a.AddState("f")
	}
}
