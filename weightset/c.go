package weightset

import (
	"fmt"
	"math/cmplx"
	"strconv"

	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// CSemiring is the field of complex numbers, backed by complex128.
type CSemiring struct{}

var _ Semiring[complex128] = CSemiring{}
var _ Subtractable[complex128] = CSemiring{}
var _ Divisible[complex128] = CSemiring{}

func (CSemiring) Name() string             { return "C" }
func (CSemiring) Zero() complex128         { return 0 }
func (CSemiring) One() complex128          { return 1 }
func (CSemiring) Add(a, b complex128) complex128 { return a + b }
func (CSemiring) Sub(a, b complex128) complex128 { return a - b }
func (CSemiring) Mul(a, b complex128) complex128 { return a * b }

func (CSemiring) LDiv(a, b complex128) (complex128, error) {
	if b == 0 {
		return 0, awerr.Domain("division by zero")
	}
	return a / b, nil
}
func (CSemiring) RDiv(a, b complex128) (complex128, error) { return CSemiring{}.LDiv(a, b) }

func (CSemiring) Star(x complex128) (complex128, error) {
	if cmplx.Abs(x) >= 1 {
		return 0, errNonStarrable(CSemiring{}.Print(x))
	}
	return 1 / (1 - x), nil
}

// Equal/Less order lexicographically by (real, imag); C has no natural
// total order, but sorting and Hopcroft signatures need one, so an
// arbitrary but consistent order is used, the same way an otherwise-
// incomparable value gets ordered by a fixed sentinel convention.
func (CSemiring) Equal(a, b complex128) bool { return a == b }
func (CSemiring) Less(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}
	return imag(a) < imag(b)
}
func (CSemiring) IsZero(w complex128) bool  { return w == 0 }
func (CSemiring) IsOne(w complex128) bool   { return w == 1 }
func (CSemiring) IsCommutative() bool       { return true }
func (CSemiring) ShowOne() bool             { return true }
func (CSemiring) StarStatus() StarStatus    { return AbsVal }

func (CSemiring) Print(w complex128) string {
	re, im := real(w), imag(w)
	if im == 0 {
		return strconv.FormatFloat(re, 'g', -1, 64)
	}
	if im < 0 {
		return fmt.Sprintf("%s%si", fmtF(re), fmtF(im))
	}
	return fmt.Sprintf("%s+%si", fmtF(re), fmtF(im))
}

func fmtF(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Conv parses "a", "bi", or "a+bi"/"a-bi".
func (CSemiring) Conv(s string, pos int) (complex128, int, error) {
	l := newLexer(s, pos)
	re, p1, err := RSemiring{}.Conv(s, l.pos)
	if err != nil {
		return 0, pos, err
	}
	l.pos = p1
	if l.peek() == 'i' {
		l.next()
		return complex(0, re), l.pos, nil
	}
	if l.peek() == '+' || l.peek() == '-' {
		im, p2, err := RSemiring{}.Conv(s, l.pos)
		if err != nil {
			return 0, pos, err
		}
		l.pos = p2
		if l.peek() != 'i' {
			return 0, pos, errExpected(l.pos, "'i' suffix on imaginary part")
		}
		l.next()
		return complex(re, im), l.pos, nil
	}
	return complex(re, 0), l.pos, nil
}

func (CSemiring) EncodeJSON(w complex128) *jsonfmt.Node {
	return jsonfmt.NewObject(
		jsonfmt.Member{Key: "re", Value: jsonfmt.NewFloat(real(w))},
		jsonfmt.Member{Key: "im", Value: jsonfmt.NewFloat(imag(w))},
	)
}

func (CSemiring) DecodeJSON(n *jsonfmt.Node) (complex128, error) {
	re, ok1 := n.Child("re").AsFloat()
	im, ok2 := n.Child("im").AsFloat()
	if !ok1 || !ok2 {
		return 0, errExpected(0, `{"re":...,"im":...}`)
	}
	return complex(re, im), nil
}
