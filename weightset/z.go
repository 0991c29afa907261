package weightset

import (
	"math/big"

	"awali.dev/awali/jsonfmt"
)

// ZSemiring is the ring of integers. Star(x) converges only for x == 0
// (star(0) = 1); any other value's geometric series diverges in Z.
type ZSemiring struct{}

var _ Semiring[*big.Int] = ZSemiring{}
var _ Subtractable[*big.Int] = ZSemiring{}

func (ZSemiring) Name() string { return "Z" }
func (ZSemiring) Zero() *big.Int { return big.NewInt(0) }
func (ZSemiring) One() *big.Int  { return big.NewInt(1) }

func (ZSemiring) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (ZSemiring) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (ZSemiring) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (ZSemiring) Star(x *big.Int) (*big.Int, error) {
	if x.Sign() == 0 {
		return big.NewInt(1), nil
	}
	return nil, errNonStarrable(x.String())
}

func (ZSemiring) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func (ZSemiring) Less(a, b *big.Int) bool  { return a.Cmp(b) < 0 }
func (ZSemiring) IsZero(w *big.Int) bool   { return w.Sign() == 0 }
func (ZSemiring) IsOne(w *big.Int) bool    { return w.Cmp(big.NewInt(1)) == 0 }
func (ZSemiring) IsCommutative() bool      { return true }
func (ZSemiring) ShowOne() bool            { return true }
func (ZSemiring) StarStatus() StarStatus   { return NonStarrable }

func (ZSemiring) Print(w *big.Int) string { return w.String() }

func (ZSemiring) Conv(s string, pos int) (*big.Int, int, error) {
	l := newLexer(s, pos)
	neg := l.scanSign()
	digits := l.scanDigits()
	if digits == "" {
		return nil, pos, errExpected(pos, "an integer")
	}
	v := new(big.Int)
	v.SetString(digits, 10)
	if neg {
		v.Neg(v)
	}
	return v, l.pos, nil
}

func (ZSemiring) EncodeJSON(w *big.Int) *jsonfmt.Node {
	if w.IsInt64() {
		return jsonfmt.NewInt(w.Int64())
	}
	return jsonfmt.NewString(w.String())
}

func (ZSemiring) DecodeJSON(n *jsonfmt.Node) (*big.Int, error) {
	switch n.Kind {
	case jsonfmt.Int:
		return big.NewInt(n.Int), nil
	case jsonfmt.String:
		v, ok := new(big.Int).SetString(n.Str, 10)
		if !ok {
			return nil, errExpected(0, "an integer string")
		}
		return v, nil
	}
	return nil, errExpected(0, "an integer")
}

// NSemiring is the semiring of non-negative integers (natural numbers).
// Like Z, star converges only at zero.
type NSemiring struct{}

var _ Semiring[*big.Int] = NSemiring{}

func (NSemiring) Name() string { return "N" }
func (NSemiring) Zero() *big.Int { return big.NewInt(0) }
func (NSemiring) One() *big.Int  { return big.NewInt(1) }

func (NSemiring) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (NSemiring) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (NSemiring) Star(x *big.Int) (*big.Int, error) {
	if x.Sign() == 0 {
		return big.NewInt(1), nil
	}
	return nil, errNonStarrable(x.String())
}

func (NSemiring) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func (NSemiring) Less(a, b *big.Int) bool  { return a.Cmp(b) < 0 }
func (NSemiring) IsZero(w *big.Int) bool   { return w.Sign() == 0 }
func (NSemiring) IsOne(w *big.Int) bool    { return w.Cmp(big.NewInt(1)) == 0 }
func (NSemiring) IsCommutative() bool      { return true }
func (NSemiring) ShowOne() bool            { return true }
func (NSemiring) StarStatus() StarStatus   { return NonStarrable }

func (NSemiring) Print(w *big.Int) string { return w.String() }

func (NSemiring) Conv(s string, pos int) (*big.Int, int, error) {
	l := newLexer(s, pos)
	digits := l.scanDigits()
	if digits == "" {
		return nil, pos, errExpected(pos, "a natural number")
	}
	v := new(big.Int)
	v.SetString(digits, 10)
	return v, l.pos, nil
}

func (NSemiring) EncodeJSON(w *big.Int) *jsonfmt.Node { return ZSemiring{}.EncodeJSON(w) }
func (NSemiring) DecodeJSON(n *jsonfmt.Node) (*big.Int, error) { return ZSemiring{}.DecodeJSON(n) }
