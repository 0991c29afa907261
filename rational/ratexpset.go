package rational

import (
	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
	"awali.dev/awali/weightset"
)

// ExprSemiring realizes an expression DAG itself as a weightset: sum as
// Add, product as Mul, the Star node as Star, letting an automaton's
// transitions be weighted by rational expressions over a second, nested
// context. This lives in this package rather than weightset to avoid a
// weightset -> rational -> weightset import cycle, since an ExprSemiring
// needs Expr's constructors directly.
type ExprSemiring[L, W any] struct {
	Labels  atomLabels[L]
	Weights weightset.Semiring[W]
}

var _ weightset.Semiring[*Expr[rune, bool]] = ExprSemiring[rune, bool]{}

func (s ExprSemiring[L, W]) Name() string    { return "RatE" }
func (s ExprSemiring[L, W]) Zero() *Expr[L, W] { return NewZero[L, W]() }
func (s ExprSemiring[L, W]) One() *Expr[L, W]  { return NewOne[L, W]() }

func (s ExprSemiring[L, W]) Add(a, b *Expr[L, W]) *Expr[L, W] {
	return Reduce(NewSum(a, b), Trivial, s.Weights)
}
func (s ExprSemiring[L, W]) Mul(a, b *Expr[L, W]) *Expr[L, W] {
	return Reduce(NewProd(a, b), Trivial, s.Weights)
}

// Star is always defined syntactically (Star is itself one of Expr's
// node kinds); whether the *automaton built from it* is realizable is a
// question for thompson.go's eager ConstantTerm check, not for the
// expression semiring itself.
func (s ExprSemiring[L, W]) Star(x *Expr[L, W]) (*Expr[L, W], error) {
	return Reduce(NewStar(x), Trivial, s.Weights), nil
}

// Equal/Less compare printed forms: expression equality up to the
// identities Reduce applies is the only equality this semiring can cheaply
// offer without deciding general rational-series equivalence.
func (s ExprSemiring[L, W]) Equal(a, b *Expr[L, W]) bool {
	return Print(a, s.Labels, s.Weights) == Print(b, s.Labels, s.Weights)
}
func (s ExprSemiring[L, W]) Less(a, b *Expr[L, W]) bool {
	return Print(a, s.Labels, s.Weights) < Print(b, s.Labels, s.Weights)
}
func (s ExprSemiring[L, W]) IsZero(w *Expr[L, W]) bool { return w.IsZero() }
func (s ExprSemiring[L, W]) IsOne(w *Expr[L, W]) bool  { return w.IsOne() }
func (s ExprSemiring[L, W]) IsCommutative() bool       { return false }
func (s ExprSemiring[L, W]) ShowOne() bool             { return true }
func (s ExprSemiring[L, W]) StarStatus() weightset.StarStatus { return weightset.Tops }

func (s ExprSemiring[L, W]) Print(w *Expr[L, W]) string { return Print(w, s.Labels, s.Weights) }

func (s ExprSemiring[L, W]) Conv(str string, pos int) (*Expr[L, W], int, error) {
	return nil, pos, awerr.NotImplemented("ExprSemiring.Conv")
}

func (s ExprSemiring[L, W]) EncodeJSON(w *Expr[L, W]) *jsonfmt.Node {
	return jsonfmt.NewString(Print(w, s.Labels, s.Weights))
}

func (s ExprSemiring[L, W]) DecodeJSON(n *jsonfmt.Node) (*Expr[L, W], error) {
	return nil, awerr.NotImplemented("ExprSemiring.DecodeJSON")
}
