package weightset

import (
	"math/big"

	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// QSemiring is the field of rational numbers, backed by math/big.Rat for
// exact arithmetic (the engine's star/join contract needs exact equality
// and comparison, which float64 cannot guarantee).
type QSemiring struct{}

var _ Semiring[*big.Rat] = QSemiring{}
var _ Subtractable[*big.Rat] = QSemiring{}
var _ Divisible[*big.Rat] = QSemiring{}

func (QSemiring) Name() string    { return "Q" }
func (QSemiring) Zero() *big.Rat  { return new(big.Rat) }
func (QSemiring) One() *big.Rat   { return big.NewRat(1, 1) }

func (QSemiring) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (QSemiring) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (QSemiring) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (QSemiring) LDiv(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, awerr.Domain("division by zero")
	}
	return new(big.Rat).Quo(a, b), nil
}
func (QSemiring) RDiv(a, b *big.Rat) (*big.Rat, error) { return QSemiring{}.LDiv(a, b) }

// Star(x) = 1/(1-x), converging for |x| < 1.
func (QSemiring) Star(x *big.Rat) (*big.Rat, error) {
	one := big.NewRat(1, 1)
	absLtOne := new(big.Rat).Abs(x).Cmp(one) < 0
	if !absLtOne {
		return nil, errNonStarrable(x.RatString())
	}
	denom := new(big.Rat).Sub(one, x)
	return new(big.Rat).Quo(one, denom), nil
}

func (QSemiring) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (QSemiring) Less(a, b *big.Rat) bool  { return a.Cmp(b) < 0 }
func (QSemiring) IsZero(w *big.Rat) bool   { return w.Sign() == 0 }
func (QSemiring) IsOne(w *big.Rat) bool    { return w.Cmp(big.NewRat(1, 1)) == 0 }
func (QSemiring) IsCommutative() bool      { return true }
func (QSemiring) ShowOne() bool            { return true }
func (QSemiring) StarStatus() StarStatus   { return AbsVal }

func (QSemiring) Print(w *big.Rat) string { return w.RatString() }

// Conv parses an integer, or a signed fraction "a/b".
func (QSemiring) Conv(s string, pos int) (*big.Rat, int, error) {
	l := newLexer(s, pos)
	neg := l.scanSign()
	num := l.scanDigits()
	if num == "" {
		return nil, pos, errExpected(pos, "a rational number")
	}
	denom := "1"
	if l.peek() == '/' {
		l.next()
		denom = l.scanDigits()
		if denom == "" {
			return nil, l.pos, errExpected(l.pos, "a denominator")
		}
	}
	r := new(big.Rat)
	if _, ok := r.SetString(num + "/" + denom); !ok {
		return nil, pos, errExpected(pos, "a rational number")
	}
	if r.Denom().Sign() == 0 {
		return nil, pos, awerr.Domain("zero denominator")
	}
	if neg {
		r.Neg(r)
	}
	return r, l.pos, nil
}

func (QSemiring) EncodeJSON(w *big.Rat) *jsonfmt.Node {
	return jsonfmt.NewString(w.RatString())
}

func (QSemiring) DecodeJSON(n *jsonfmt.Node) (*big.Rat, error) {
	if n == nil || n.Kind != jsonfmt.String {
		if f, ok := n.AsFloat(); ok {
			return new(big.Rat).SetFloat64(f), nil
		}
		return nil, errExpected(0, "a rational number string")
	}
	r, ok := new(big.Rat).SetString(n.Str)
	if !ok {
		return nil, errExpected(0, "a rational number string")
	}
	return r, nil
}
