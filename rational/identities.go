package rational

import "awali.dev/awali/weightset"

// IdentityLevel selects how aggressively Reduce simplifies an expression:
// "trivial" identities only, or "series" identities as well.
type IdentityLevel int

const (
	// Trivial applies only the identities that hold syntactically
	// regardless of the weightset: zero absorbs in product, one is
	// neutral in product, zero is neutral in sum, flattening of nested
	// same-operator n-ary nodes.
	Trivial IdentityLevel = iota
	// Series additionally applies weightset-aware identities: weight-zero
	// annihilates, weight-one is dropped, and adjacent weights on the same
	// side of the same sub-expression combine; left and right weights are
	// not merged with each other, even over a commutative weightset.
	Series
)

// Reduce rewrites e bottom-up according to level, returning a new,
// possibly smaller Expr.
func Reduce[L, W any](e *Expr[L, W], level IdentityLevel, weights weightset.Semiring[W]) *Expr[L, W] {
	r := &reducer[L, W]{level: level, weights: weights}
	return Visit[L, W, *Expr[L, W]](e, r)
}

type reducer[L, W any] struct {
	level   IdentityLevel
	weights weightset.Semiring[W]
}

func (r *reducer[L, W]) reduce(e *Expr[L, W]) *Expr[L, W] { return Visit[L, W, *Expr[L, W]](e, r) }

func (r *reducer[L, W]) VisitZero() *Expr[L, W] { return NewZero[L, W]() }
func (r *reducer[L, W]) VisitOne() *Expr[L, W]  { return NewOne[L, W]() }
func (r *reducer[L, W]) VisitAtom(l L) *Expr[L, W] { return NewAtom[L, W](l) }

func (r *reducer[L, W]) VisitSum(kids []*Expr[L, W]) *Expr[L, W] {
	var flat []*Expr[L, W]
	for _, k := range kids {
		rk := r.reduce(k)
		if rk.IsZero() {
			continue
		}
		if rk.Op == Sum {
			flat = append(flat, rk.Kids...)
		} else {
			flat = append(flat, rk)
		}
	}
	if len(flat) == 0 {
		return NewZero[L, W]()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return NewSum(flat...)
}

func (r *reducer[L, W]) VisitProd(kids []*Expr[L, W]) *Expr[L, W] {
	var flat []*Expr[L, W]
	for _, k := range kids {
		rk := r.reduce(k)
		if rk.IsZero() {
			return NewZero[L, W]()
		}
		if rk.IsOne() {
			continue
		}
		if rk.Op == Prod {
			flat = append(flat, rk.Kids...)
		} else {
			flat = append(flat, rk)
		}
	}
	if len(flat) == 0 {
		return NewOne[L, W]()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return NewProd(flat...)
}

func (r *reducer[L, W]) VisitConjunction(kids []*Expr[L, W]) *Expr[L, W] {
	var flat []*Expr[L, W]
	for _, k := range kids {
		rk := r.reduce(k)
		if rk.IsZero() {
			return NewZero[L, W]()
		}
		if rk.Op == Conjunction {
			flat = append(flat, rk.Kids...)
		} else {
			flat = append(flat, rk)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return NewConjunction(flat...)
}

func (r *reducer[L, W]) VisitShuffle(kids []*Expr[L, W]) *Expr[L, W] {
	var flat []*Expr[L, W]
	for _, k := range kids {
		rk := r.reduce(k)
		if rk.IsOne() {
			continue
		}
		if rk.Op == Shuffle {
			flat = append(flat, rk.Kids...)
		} else {
			flat = append(flat, rk)
		}
	}
	if len(flat) == 0 {
		return NewOne[L, W]()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return NewShuffle(flat...)
}

func (r *reducer[L, W]) VisitStar(sub *Expr[L, W]) *Expr[L, W] {
	rs := r.reduce(sub)
	if rs.IsZero() || rs.IsOne() {
		return NewOne[L, W]()
	}
	return NewStar(rs)
}

func (r *reducer[L, W]) VisitPlus(sub *Expr[L, W]) *Expr[L, W] {
	rs := r.reduce(sub)
	if rs.IsZero() {
		return NewZero[L, W]()
	}
	return NewPlus(rs)
}

func (r *reducer[L, W]) VisitMaybe(sub *Expr[L, W]) *Expr[L, W] {
	rs := r.reduce(sub)
	if rs.IsZero() || rs.IsOne() {
		return NewOne[L, W]()
	}
	return NewMaybe(rs)
}

func (r *reducer[L, W]) VisitComplement(sub *Expr[L, W]) *Expr[L, W] {
	return NewComplement(r.reduce(sub))
}

func (r *reducer[L, W]) VisitTransposition(sub *Expr[L, W]) *Expr[L, W] {
	rs := r.reduce(sub)
	switch rs.Op {
	case Zero, One, Atom:
		return rs
	}
	return NewTransposition(rs)
}

func (r *reducer[L, W]) VisitLDiv(lhs, rhs *Expr[L, W]) *Expr[L, W] {
	rl, rr := r.reduce(lhs), r.reduce(rhs)
	if rl.IsZero() || rr.IsZero() {
		return NewZero[L, W]()
	}
	if rl.IsOne() {
		return rr
	}
	return NewLDiv(rl, rr)
}

func (r *reducer[L, W]) VisitLWeight(w W, sub *Expr[L, W]) *Expr[L, W] {
	rs := r.reduce(sub)
	if r.level == Trivial {
		return NewLWeight(w, rs)
	}
	if r.weights.IsZero(w) || rs.IsZero() {
		return NewZero[L, W]()
	}
	if r.weights.IsOne(w) {
		return rs
	}
	if rs.Op == LWeight {
		return NewLWeight(r.weights.Mul(w, rs.Weight), rs.Sub)
	}
	return NewLWeight(w, rs)
}

func (r *reducer[L, W]) VisitRWeight(sub *Expr[L, W], w W) *Expr[L, W] {
	rs := r.reduce(sub)
	if r.level == Trivial {
		return NewRWeight(rs, w)
	}
	if r.weights.IsZero(w) || rs.IsZero() {
		return NewZero[L, W]()
	}
	if r.weights.IsOne(w) {
		return rs
	}
	if rs.Op == RWeight {
		return NewRWeight(rs.Sub, r.weights.Mul(rs.Weight, w))
	}
	return NewRWeight(rs, w)
}
