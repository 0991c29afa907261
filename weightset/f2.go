package weightset

import "awali.dev/awali/jsonfmt"

// F2Semiring is the field GF(2) = {0, 1} with Add = XOR, Mul = AND.
// Unlike B, addition has an inverse (every element is its own negation).
type F2Semiring struct{}

var _ Semiring[bool] = F2Semiring{}
var _ Subtractable[bool] = F2Semiring{}

func (F2Semiring) Name() string           { return "F2" }
func (F2Semiring) Zero() bool             { return false }
func (F2Semiring) One() bool              { return true }
func (F2Semiring) Add(a, b bool) bool     { return a != b }
func (F2Semiring) Sub(a, b bool) bool     { return a != b } // -1 == 1 in F2
func (F2Semiring) Mul(a, b bool) bool     { return a && b }
func (F2Semiring) Equal(a, b bool) bool   { return a == b }
func (F2Semiring) Less(a, b bool) bool    { return !a && b }
func (F2Semiring) IsZero(w bool) bool     { return !w }
func (F2Semiring) IsOne(w bool) bool      { return w }
func (F2Semiring) IsCommutative() bool    { return true }
func (F2Semiring) ShowOne() bool          { return true }
func (F2Semiring) StarStatus() StarStatus { return NonStarrable }

// Star(0) = 1; star(1) is undefined since 1+1+1+... oscillates and never
// settles (1 = 1, x2 = 0, x3 = 1, ...), i.e. it does not converge.
func (F2Semiring) Star(x bool) (bool, error) {
	if !x {
		return true, nil
	}
	return false, errNonStarrable("1")
}

func (F2Semiring) Print(w bool) string {
	if w {
		return "1"
	}
	return "0"
}

func (F2Semiring) Conv(s string, pos int) (bool, int, error) {
	if pos >= len(s) {
		return false, pos, errExpected(pos, "0 or 1")
	}
	switch s[pos] {
	case '0':
		return false, pos + 1, nil
	case '1':
		return true, pos + 1, nil
	}
	return false, pos, errExpected(pos, "0 or 1")
}

func (F2Semiring) EncodeJSON(w bool) *jsonfmt.Node {
	if w {
		return jsonfmt.NewInt(1)
	}
	return jsonfmt.NewInt(0)
}

func (F2Semiring) DecodeJSON(n *jsonfmt.Node) (bool, error) {
	f, ok := n.AsFloat()
	if !ok {
		return false, errExpected(0, "0 or 1")
	}
	return f != 0, nil
}
