package algo

import (
	"awali.dev/awali/automaton"
	"awali.dev/awali/rational"
)

// ExpressionFrom converts a (proper, standardized) automaton into an
// equivalent rational expression by state elimination: repeatedly pick a
// non-Pre/Post state, replace every path through it with a direct
// transition carrying the corresponding Star-shaped expression, and
// delete it, until only Pre and Post remain.
//
// Grounded on the classic McNaughton-Yamada / Kleene elimination order;
// this implementation eliminates states in automaton allocation order,
// which is simple but not latency-optimal (a smarter order minimizes the
// resulting expression's size - left as a future improvement, not
// attempted here).
func ExpressionFrom[L, W any](a *automaton.Automaton[L, W]) *rational.Expr[L, W] {
	weights := a.Ctx.Weights
	edge := map[[2]automaton.StateID]*rational.Expr[L, W]{}

	get := func(p, q automaton.StateID) *rational.Expr[L, W] {
		if e, ok := edge[[2]automaton.StateID{p, q}]; ok {
			return e
		}
		return nil
	}
	set := func(p, q automaton.StateID, e *rational.Expr[L, W]) {
		if old := get(p, q); old != nil {
			e = rational.NewSum(old, e)
		}
		edge[[2]automaton.StateID{p, q}] = rational.Reduce(e, rational.Series, weights)
	}

	for _, q := range a.States() {
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			var e *rational.Expr[L, W]
			if a.IsEpsilon(tid) || q == automaton.Pre || dst == automaton.Post {
				e = rational.NewOne[L, W]()
			} else {
				e = rational.NewAtom[L, W](a.LabelOf(tid))
			}
			w := a.WeightOf(tid)
			if !weights.IsOne(w) {
				e = rational.NewLWeight(w, e)
			}
			set(q, dst, e)
		}
	}

	states := a.States()
	for _, q := range states {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		loop := get(q, q)
		var starLoop *rational.Expr[L, W]
		if loop != nil {
			starLoop = rational.NewStar(loop)
		}
		for _, p := range states {
			if p == q || get(p, q) == nil {
				continue
			}
			for _, r := range states {
				if r == q || get(q, r) == nil {
					continue
				}
				mid := get(q, r)
				if starLoop != nil {
					mid = rational.NewProd(starLoop, mid)
				}
				through := rational.NewProd(get(p, q), mid)
				set(p, r, through)
			}
		}
		for k := range edge {
			if k[0] == q || k[1] == q {
				delete(edge, k)
			}
		}
	}

	if e := get(automaton.Pre, automaton.Post); e != nil {
		return rational.Reduce(e, rational.Series, weights)
	}
	return rational.NewZero[L, W]()
}
