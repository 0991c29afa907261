package weightset

import (
	"math"
	"strconv"

	"awali.dev/awali/jsonfmt"
)

// TropicalMinPlusSemiring is Z-min-plus: add = min, mul = +, zero = +inf,
// one = 0. Encoded over float64 so +/-infinity have a direct representation.
type TropicalMinPlusSemiring struct{}

var _ Semiring[float64] = TropicalMinPlusSemiring{}

func (TropicalMinPlusSemiring) Name() string  { return "Z-min-plus" }
func (TropicalMinPlusSemiring) Zero() float64 { return math.Inf(1) }
func (TropicalMinPlusSemiring) One() float64  { return 0 }

func (TropicalMinPlusSemiring) Add(a, b float64) float64 { return math.Min(a, b) }
func (TropicalMinPlusSemiring) Mul(a, b float64) float64 { return a + b }

// Star(x) = one for every x, since idempotent addition (min) makes the
// geometric series 0, min(0,x), min(0,x,2x), ... collapse to min(0,x),
// starrable for any finite weight; negative weights would make it diverge
// toward -inf under repeated self-product, so those are rejected.
func (TropicalMinPlusSemiring) Star(x float64) (float64, error) {
	if x < 0 {
		return 0, errNonStarrable(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return 0, nil
}

func (TropicalMinPlusSemiring) Equal(a, b float64) bool { return a == b }
func (TropicalMinPlusSemiring) Less(a, b float64) bool  { return a < b }
func (TropicalMinPlusSemiring) IsZero(w float64) bool   { return math.IsInf(w, 1) }
func (TropicalMinPlusSemiring) IsOne(w float64) bool    { return w == 0 }
func (TropicalMinPlusSemiring) IsCommutative() bool     { return true }
func (TropicalMinPlusSemiring) ShowOne() bool           { return true }
func (TropicalMinPlusSemiring) StarStatus() StarStatus  { return Starrable }

func (TropicalMinPlusSemiring) Print(w float64) string {
	if math.IsInf(w, 1) {
		return "oo"
	}
	if math.IsInf(w, -1) {
		return "-oo"
	}
	return strconv.FormatFloat(w, 'g', -1, 64)
}

func (TropicalMinPlusSemiring) Conv(s string, pos int) (float64, int, error) {
	return RSemiring{}.Conv(s, pos)
}

func (TropicalMinPlusSemiring) EncodeJSON(w float64) *jsonfmt.Node {
	if math.IsInf(w, 0) {
		return jsonfmt.NewString(TropicalMinPlusSemiring{}.Print(w))
	}
	return jsonfmt.NewFloat(w)
}

func (TropicalMinPlusSemiring) DecodeJSON(n *jsonfmt.Node) (float64, error) {
	if n.Kind == jsonfmt.String {
		switch n.Str {
		case "oo":
			return math.Inf(1), nil
		case "-oo":
			return math.Inf(-1), nil
		}
	}
	f, ok := n.AsFloat()
	if !ok {
		return 0, errExpected(0, "a tropical weight")
	}
	return f, nil
}

// TropicalMaxPlusSemiring is Z-max-plus: add = max, mul = +, zero = -inf,
// one = 0.
type TropicalMaxPlusSemiring struct{}

var _ Semiring[float64] = TropicalMaxPlusSemiring{}

func (TropicalMaxPlusSemiring) Name() string  { return "Z-max-plus" }
func (TropicalMaxPlusSemiring) Zero() float64 { return math.Inf(-1) }
func (TropicalMaxPlusSemiring) One() float64  { return 0 }

func (TropicalMaxPlusSemiring) Add(a, b float64) float64 { return math.Max(a, b) }
func (TropicalMaxPlusSemiring) Mul(a, b float64) float64 { return a + b }

func (TropicalMaxPlusSemiring) Star(x float64) (float64, error) {
	if x > 0 {
		return 0, errNonStarrable(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return 0, nil
}

func (TropicalMaxPlusSemiring) Equal(a, b float64) bool { return a == b }
func (TropicalMaxPlusSemiring) Less(a, b float64) bool  { return a < b }
func (TropicalMaxPlusSemiring) IsZero(w float64) bool   { return math.IsInf(w, -1) }
func (TropicalMaxPlusSemiring) IsOne(w float64) bool    { return w == 0 }
func (TropicalMaxPlusSemiring) IsCommutative() bool     { return true }
func (TropicalMaxPlusSemiring) ShowOne() bool           { return true }
func (TropicalMaxPlusSemiring) StarStatus() StarStatus  { return Starrable }

func (TropicalMaxPlusSemiring) Print(w float64) string {
	return TropicalMinPlusSemiring{}.Print(w)
}

func (TropicalMaxPlusSemiring) Conv(s string, pos int) (float64, int, error) {
	return RSemiring{}.Conv(s, pos)
}

func (TropicalMaxPlusSemiring) EncodeJSON(w float64) *jsonfmt.Node {
	return TropicalMinPlusSemiring{}.EncodeJSON(w)
}

func (TropicalMaxPlusSemiring) DecodeJSON(n *jsonfmt.Node) (float64, error) {
	return TropicalMinPlusSemiring{}.DecodeJSON(n)
}
