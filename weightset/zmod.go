package weightset

import (
	"strconv"

	"awali.dev/awali/jsonfmt"
)

// ZModSemiring is the ring Z/nZ for a fixed modulus n >= 2.
type ZModSemiring struct {
	N int64
}

var _ Semiring[int64] = ZModSemiring{}
var _ Subtractable[int64] = ZModSemiring{}

func (z ZModSemiring) mod(v int64) int64 {
	v %= z.N
	if v < 0 {
		v += z.N
	}
	return v
}

func (z ZModSemiring) Name() string { return "Z/" + strconv.FormatInt(z.N, 10) + "Z" }
func (z ZModSemiring) Zero() int64  { return 0 }
func (z ZModSemiring) One() int64   { return 1 % z.N }

func (z ZModSemiring) Add(a, b int64) int64 { return z.mod(a + b) }
func (z ZModSemiring) Sub(a, b int64) int64 { return z.mod(a - b) }
func (z ZModSemiring) Mul(a, b int64) int64 { return z.mod(a * b) }

// Star converges only at zero, same as Z, since Z/nZ has zero divisors in
// general and 1+x+x^2+... is only guaranteed to stabilize for x == 0.
func (z ZModSemiring) Star(x int64) (int64, error) {
	if x == 0 {
		return 1 % z.N, nil
	}
	return 0, errNonStarrable(strconv.FormatInt(x, 10))
}

func (z ZModSemiring) Equal(a, b int64) bool { return z.mod(a) == z.mod(b) }
func (z ZModSemiring) Less(a, b int64) bool  { return z.mod(a) < z.mod(b) }
func (z ZModSemiring) IsZero(w int64) bool   { return z.mod(w) == 0 }
func (z ZModSemiring) IsOne(w int64) bool    { return z.mod(w) == z.One() }
func (z ZModSemiring) IsCommutative() bool   { return true }
func (z ZModSemiring) ShowOne() bool         { return true }
func (z ZModSemiring) StarStatus() StarStatus { return NonStarrable }

func (z ZModSemiring) Print(w int64) string { return strconv.FormatInt(z.mod(w), 10) }

func (z ZModSemiring) Conv(s string, pos int) (int64, int, error) {
	l := newLexer(s, pos)
	neg := l.scanSign()
	digits := l.scanDigits()
	if digits == "" {
		return 0, pos, errExpected(pos, "an integer modulo "+strconv.FormatInt(z.N, 10))
	}
	v, _ := strconv.ParseInt(digits, 10, 64)
	if neg {
		v = -v
	}
	return z.mod(v), l.pos, nil
}

func (z ZModSemiring) EncodeJSON(w int64) *jsonfmt.Node { return jsonfmt.NewInt(z.mod(w)) }

func (z ZModSemiring) DecodeJSON(n *jsonfmt.Node) (int64, error) {
	f, ok := n.AsFloat()
	if !ok {
		return 0, errExpected(0, "an integer")
	}
	return z.mod(int64(f)), nil
}
