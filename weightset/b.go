package weightset

import "awali.dev/awali/jsonfmt"

// BSemiring is the Boolean semiring {false, true} with Add = OR,
// Mul = AND. Every value is starrable (star(x) = true for all x).
type BSemiring struct{}

var _ Semiring[bool] = BSemiring{}

func (BSemiring) Name() string        { return "B" }
func (BSemiring) Zero() bool          { return false }
func (BSemiring) One() bool           { return true }
func (BSemiring) Add(a, b bool) bool  { return a || b }
func (BSemiring) Mul(a, b bool) bool  { return a && b }
func (BSemiring) Star(bool) (bool, error) { return true, nil }
func (BSemiring) Equal(a, b bool) bool { return a == b }
func (BSemiring) Less(a, b bool) bool  { return !a && b }
func (BSemiring) IsZero(w bool) bool   { return !w }
func (BSemiring) IsOne(w bool) bool    { return w }
func (BSemiring) IsCommutative() bool  { return true }
func (BSemiring) ShowOne() bool        { return false }
func (BSemiring) StarStatus() StarStatus { return Starrable }

func (BSemiring) Print(w bool) string {
	if w {
		return "1"
	}
	return "0"
}

func (BSemiring) Conv(s string, pos int) (bool, int, error) {
	if pos >= len(s) {
		return false, pos, errExpected(pos, "0 or 1")
	}
	switch s[pos] {
	case '0':
		return false, pos + 1, nil
	case '1':
		return true, pos + 1, nil
	}
	if hasPrefixAt(s, pos, "true") {
		return true, pos + 4, nil
	}
	if hasPrefixAt(s, pos, "false") {
		return false, pos + 5, nil
	}
	return false, pos, errExpected(pos, "0, 1, true or false")
}

func (BSemiring) EncodeJSON(w bool) *jsonfmt.Node { return jsonfmt.NewBool(w) }

func (BSemiring) DecodeJSON(n *jsonfmt.Node) (bool, error) {
	if n == nil || n.Kind != jsonfmt.Bool {
		return false, errExpected(0, "boolean")
	}
	return n.Bool, nil
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(s) && s[pos:pos+len(prefix)] == prefix
}
