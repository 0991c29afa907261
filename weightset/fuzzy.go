package weightset

import (
	"strconv"

	"awali.dev/awali/jsonfmt"
)

// FuzzySemiring is the fuzzy semiring bounded to [0,1]: add = max,
// mul = min, zero = 0, one = 1.
type FuzzySemiring struct{}

var _ Semiring[float64] = FuzzySemiring{}

func (FuzzySemiring) Name() string  { return "Fuzzy" }
func (FuzzySemiring) Zero() float64 { return 0 }
func (FuzzySemiring) One() float64  { return 1 }

func (FuzzySemiring) Add(a, b float64) float64 { return max(a, b) }
func (FuzzySemiring) Mul(a, b float64) float64 { return min(a, b) }

// Star is total: idempotent max/min bounded to [0,1] always collapses the
// series to one.
func (FuzzySemiring) Star(x float64) (float64, error) {
	if x < 0 || x > 1 {
		return 0, errNonStarrable(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return 1, nil
}

func (FuzzySemiring) Equal(a, b float64) bool { return a == b }
func (FuzzySemiring) Less(a, b float64) bool  { return a < b }
func (FuzzySemiring) IsZero(w float64) bool   { return w == 0 }
func (FuzzySemiring) IsOne(w float64) bool    { return w == 1 }
func (FuzzySemiring) IsCommutative() bool     { return true }
func (FuzzySemiring) ShowOne() bool           { return true }
func (FuzzySemiring) StarStatus() StarStatus  { return Tops }

func (FuzzySemiring) Print(w float64) string { return strconv.FormatFloat(w, 'g', -1, 64) }

func (FuzzySemiring) Conv(s string, pos int) (float64, int, error) {
	return MaxProdSemiring{}.Conv(s, pos)
}

func (FuzzySemiring) EncodeJSON(w float64) *jsonfmt.Node { return jsonfmt.NewFloat(w) }

func (FuzzySemiring) DecodeJSON(n *jsonfmt.Node) (float64, error) {
	return MaxProdSemiring{}.DecodeJSON(n)
}
