package rational

import "awali.dev/awali/weightset"

// ConstantTerm computes c(e), the coefficient the formal power series
// denoted by e assigns to the empty word. The weighted Thompson
// construction needs c(e) for every Star sub-expression: a weighted
// automaton with an epsilon-loop back to its own start (as plain Thompson
// builds for star) is only well-defined when c(e) is star-able in the
// weightset, so computing it eagerly at construction time (rather than
// discovering a divergence during evaluation) is what lets thompson.go
// fail fast with a NonStarrableErr pinpointing the offending
// sub-expression.
func ConstantTerm[L, W any](e *Expr[L, W], weights weightset.Semiring[W]) (W, error) {
	c := &constantTermVisitor[L, W]{weights: weights}
	return Visit[L, W, ctResult[W]](e, c).unpack()
}

type ctResult[W any] struct {
	w   W
	err error
}

func (r ctResult[W]) unpack() (W, error) { return r.w, r.err }

type constantTermVisitor[L, W any] struct {
	weights weightset.Semiring[W]
}

func (c *constantTermVisitor[L, W]) VisitZero() ctResult[W] {
	return ctResult[W]{w: c.weights.Zero()}
}
func (c *constantTermVisitor[L, W]) VisitOne() ctResult[W] {
	return ctResult[W]{w: c.weights.One()}
}
func (c *constantTermVisitor[L, W]) VisitAtom(l L) ctResult[W] {
	return ctResult[W]{w: c.weights.Zero()}
}

func (c *constantTermVisitor[L, W]) VisitSum(kids []*Expr[L, W]) ctResult[W] {
	acc := c.weights.Zero()
	for _, k := range kids {
		w, err := ConstantTerm(k, c.weights)
		if err != nil {
			return ctResult[W]{err: err}
		}
		acc = c.weights.Add(acc, w)
	}
	return ctResult[W]{w: acc}
}

func (c *constantTermVisitor[L, W]) VisitProd(kids []*Expr[L, W]) ctResult[W] {
	acc := c.weights.One()
	for _, k := range kids {
		w, err := ConstantTerm(k, c.weights)
		if err != nil {
			return ctResult[W]{err: err}
		}
		acc = c.weights.Mul(acc, w)
	}
	return ctResult[W]{w: acc}
}

func (c *constantTermVisitor[L, W]) VisitStar(sub *Expr[L, W]) ctResult[W] {
	w, err := ConstantTerm(sub, c.weights)
	if err != nil {
		return ctResult[W]{err: err}
	}
	s, err := c.weights.Star(w)
	return ctResult[W]{w: s, err: err}
}

func (c *constantTermVisitor[L, W]) VisitPlus(sub *Expr[L, W]) ctResult[W] {
	w, err := ConstantTerm(sub, c.weights)
	if err != nil {
		return ctResult[W]{err: err}
	}
	s, err := c.weights.Star(w)
	if err != nil {
		return ctResult[W]{err: err}
	}
	return ctResult[W]{w: c.weights.Mul(w, s)}
}

func (c *constantTermVisitor[L, W]) VisitMaybe(sub *Expr[L, W]) ctResult[W] {
	w, err := ConstantTerm(sub, c.weights)
	if err != nil {
		return ctResult[W]{err: err}
	}
	return ctResult[W]{w: c.weights.Add(c.weights.One(), w)}
}

func (c *constantTermVisitor[L, W]) VisitComplement(sub *Expr[L, W]) ctResult[W] {
	w, err := ConstantTerm(sub, c.weights)
	if err != nil {
		return ctResult[W]{err: err}
	}
	if c.weights.IsZero(w) {
		return ctResult[W]{w: c.weights.One()}
	}
	return ctResult[W]{w: c.weights.Zero()}
}

func (c *constantTermVisitor[L, W]) VisitConjunction(kids []*Expr[L, W]) ctResult[W] {
	acc := c.weights.One()
	for _, k := range kids {
		w, err := ConstantTerm(k, c.weights)
		if err != nil {
			return ctResult[W]{err: err}
		}
		acc = c.weights.Mul(acc, w)
	}
	return ctResult[W]{w: acc}
}

func (c *constantTermVisitor[L, W]) VisitShuffle(kids []*Expr[L, W]) ctResult[W] {
	return c.VisitProd(kids)
}

func (c *constantTermVisitor[L, W]) VisitLDiv(lhs, rhs *Expr[L, W]) ctResult[W] {
	return c.VisitProd([]*Expr[L, W]{lhs, rhs})
}

func (c *constantTermVisitor[L, W]) VisitTransposition(sub *Expr[L, W]) ctResult[W] {
	w, err := ConstantTerm(sub, c.weights)
	return ctResult[W]{w: w, err: err}
}

func (c *constantTermVisitor[L, W]) VisitLWeight(w W, sub *Expr[L, W]) ctResult[W] {
	s, err := ConstantTerm(sub, c.weights)
	if err != nil {
		return ctResult[W]{err: err}
	}
	return ctResult[W]{w: c.weights.Mul(w, s)}
}

func (c *constantTermVisitor[L, W]) VisitRWeight(sub *Expr[L, W], w W) ctResult[W] {
	s, err := ConstantTerm(sub, c.weights)
	if err != nil {
		return ctResult[W]{err: err}
	}
	return ctResult[W]{w: c.weights.Mul(s, w)}
}
