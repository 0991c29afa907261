package weightset

import (
	"strconv"

	"awali.dev/awali/jsonfmt"
)

// MaxProdSemiring is R-max-prod, bounded to [0,1]: add = max, mul = *,
// zero = 0, one = 1.
type MaxProdSemiring struct{}

var _ Semiring[float64] = MaxProdSemiring{}

func (MaxProdSemiring) Name() string  { return "R-max-prod" }
func (MaxProdSemiring) Zero() float64 { return 0 }
func (MaxProdSemiring) One() float64  { return 1 }

func (MaxProdSemiring) Add(a, b float64) float64 { return max(a, b) }
func (MaxProdSemiring) Mul(a, b float64) float64 { return a * b }

// Star is total over [0,1]: the geometric series of a value in that range
// under max/mul saturates at one immediately, so Tops status applies.
func (MaxProdSemiring) Star(x float64) (float64, error) {
	if x < 0 || x > 1 {
		return 0, errNonStarrable(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return 1, nil
}

func (MaxProdSemiring) Equal(a, b float64) bool { return a == b }
func (MaxProdSemiring) Less(a, b float64) bool  { return a < b }
func (MaxProdSemiring) IsZero(w float64) bool   { return w == 0 }
func (MaxProdSemiring) IsOne(w float64) bool    { return w == 1 }
func (MaxProdSemiring) IsCommutative() bool     { return true }
func (MaxProdSemiring) ShowOne() bool           { return true }
func (MaxProdSemiring) StarStatus() StarStatus  { return Tops }

func (MaxProdSemiring) Print(w float64) string { return strconv.FormatFloat(w, 'g', -1, 64) }

func (MaxProdSemiring) Conv(s string, pos int) (float64, int, error) {
	v, p, err := RSemiring{}.Conv(s, pos)
	if err != nil {
		return 0, pos, err
	}
	if v < 0 || v > 1 {
		return 0, pos, errExpected(pos, "a weight in [0,1]")
	}
	return v, p, nil
}

func (MaxProdSemiring) EncodeJSON(w float64) *jsonfmt.Node { return jsonfmt.NewFloat(w) }

func (MaxProdSemiring) DecodeJSON(n *jsonfmt.Node) (float64, error) {
	f, ok := n.AsFloat()
	if !ok || f < 0 || f > 1 {
		return 0, errExpected(0, "a weight in [0,1]")
	}
	return f, nil
}
