package weightset

import (
	"strconv"

	"awali.dev/awali/jsonfmt"
)

// NBoundedSemiring is the semiring of natural numbers saturating at a fixed
// bound: addition and multiplication clamp to Max instead of overflowing.
type NBoundedSemiring struct {
	Max int64
}

var _ Semiring[int64] = NBoundedSemiring{}

func (n NBoundedSemiring) clamp(v int64) int64 {
	if v > n.Max {
		return n.Max
	}
	if v < 0 {
		return 0
	}
	return v
}

func (n NBoundedSemiring) Name() string { return "N-" + strconv.FormatInt(n.Max, 10) }
func (n NBoundedSemiring) Zero() int64  { return 0 }
func (n NBoundedSemiring) One() int64   { return n.clamp(1) }

func (n NBoundedSemiring) Add(a, b int64) int64 { return n.clamp(a + b) }
func (n NBoundedSemiring) Mul(a, b int64) int64 { return n.clamp(a * b) }

// Star(0) = 1; any positive value saturates the bound under repeated
// addition, which the engine treats as non-starrable since the series
// itself does not converge to a stable algebraic value.
func (n NBoundedSemiring) Star(x int64) (int64, error) {
	if x == 0 {
		return n.One(), nil
	}
	return 0, errNonStarrable(strconv.FormatInt(x, 10))
}

func (n NBoundedSemiring) Equal(a, b int64) bool { return a == b }
func (n NBoundedSemiring) Less(a, b int64) bool  { return a < b }
func (n NBoundedSemiring) IsZero(w int64) bool   { return w == 0 }
func (n NBoundedSemiring) IsOne(w int64) bool    { return w == n.One() }
func (n NBoundedSemiring) IsCommutative() bool   { return true }
func (n NBoundedSemiring) ShowOne() bool         { return true }
func (n NBoundedSemiring) StarStatus() StarStatus { return NonStarrable }

func (n NBoundedSemiring) Print(w int64) string { return strconv.FormatInt(w, 10) }

func (n NBoundedSemiring) Conv(s string, pos int) (int64, int, error) {
	l := newLexer(s, pos)
	digits := l.scanDigits()
	if digits == "" {
		return 0, pos, errExpected(pos, "a natural number")
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, pos, errExpected(pos, "a natural number")
	}
	return n.clamp(v), l.pos, nil
}

func (n NBoundedSemiring) EncodeJSON(w int64) *jsonfmt.Node { return jsonfmt.NewInt(w) }

func (n NBoundedSemiring) DecodeJSON(node *jsonfmt.Node) (int64, error) {
	f, ok := node.AsFloat()
	if !ok {
		return 0, errExpected(0, "a natural number")
	}
	return n.clamp(int64(f)), nil
}
