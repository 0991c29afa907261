package weightset

import (
	"math"
	"strconv"

	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// RSemiring is the field of real numbers, approximated by float64.
type RSemiring struct{}

var _ Semiring[float64] = RSemiring{}
var _ Subtractable[float64] = RSemiring{}
var _ Divisible[float64] = RSemiring{}

func (RSemiring) Name() string           { return "R" }
func (RSemiring) Zero() float64          { return 0 }
func (RSemiring) One() float64           { return 1 }
func (RSemiring) Add(a, b float64) float64 { return a + b }
func (RSemiring) Sub(a, b float64) float64 { return a - b }
func (RSemiring) Mul(a, b float64) float64 { return a * b }

func (RSemiring) LDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, awerr.Domain("division by zero")
	}
	return a / b, nil
}
func (RSemiring) RDiv(a, b float64) (float64, error) { return RSemiring{}.LDiv(a, b) }

func (RSemiring) Star(x float64) (float64, error) {
	if math.Abs(x) >= 1 {
		return 0, errNonStarrable(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return 1 / (1 - x), nil
}

func (RSemiring) Equal(a, b float64) bool { return a == b }
func (RSemiring) Less(a, b float64) bool  { return a < b }
func (RSemiring) IsZero(w float64) bool   { return w == 0 }
func (RSemiring) IsOne(w float64) bool    { return w == 1 }
func (RSemiring) IsCommutative() bool     { return true }
func (RSemiring) ShowOne() bool           { return true }
func (RSemiring) StarStatus() StarStatus  { return AbsVal }

func (RSemiring) Print(w float64) string { return strconv.FormatFloat(w, 'g', -1, 64) }

func (RSemiring) Conv(s string, pos int) (float64, int, error) {
	l := newLexer(s, pos)
	start := l.pos
	l.scanSign()
	if l.scanInfinity() {
		if start < l.pos-2 { // had a sign
			return math.Inf(-1), l.pos, nil
		}
		return math.Inf(1), l.pos, nil
	}
	l.pos = start
	l.scanSign()
	l.scanDigits()
	if l.peek() == '.' {
		l.next()
		l.scanDigits()
	}
	raw := s[start:l.pos]
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, start, errExpected(start, "a real number")
	}
	return f, l.pos, nil
}

func (RSemiring) EncodeJSON(w float64) *jsonfmt.Node { return jsonfmt.NewFloat(w) }

func (RSemiring) DecodeJSON(n *jsonfmt.Node) (float64, error) {
	f, ok := n.AsFloat()
	if !ok {
		return 0, errExpected(0, "a real number")
	}
	return f, nil
}
