package label

import (
	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
	"awali.dev/awali/rational"
	"awali.dev/awali/weightset"
)

// ExpressionSet is the labelset whose labels are themselves rational
// expressions over a nested context (L2, W): used by the derived-term
// construction, where each state of the result automaton is tagged with
// (and each transition is labeled by derivative with respect to) a
// sub-expression of the original. This is the labelset side of the same
// "labels are expressions" idea ExprSemiring (rational/ratexpset.go)
// realizes on the weight side; a labelset here never needs Star-as-weight,
// only Equal/Less/Print/Parse over Expr values, so it is kept separate
// rather than collapsed into ExprSemiring.
type ExpressionSet[L2, W2 any] struct {
	Inner   atomLabelsAndParser[L2]
	Weights weightset.Semiring[W2]
}

// atomLabelsAndParser is the minimal constraint ExpressionSet needs from
// the nested labelset: printing and parsing atoms, without importing the
// label.Set[L2] interface itself (which would be a cycle-free but
// needlessly wide dependency for what is otherwise two methods).
type atomLabelsAndParser[L2 any] interface {
	Print(l L2) string
	Equal(a, b L2) bool
	Parse(s string, pos int) (L2, int, error)
}

var _ Set[*rational.Expr[rune, bool]] = ExpressionSet[rune, bool]{}

func (e ExpressionSet[L2, W2]) Kind() Kind { return ExpressionKind }
func (e ExpressionSet[L2, W2]) Name() string {
	return "expressionset<" + e.Weights.Name() + ">"
}

func (e ExpressionSet[L2, W2]) One() *rational.Expr[L2, W2] { return rational.NewOne[L2, W2]() }
func (e ExpressionSet[L2, W2]) HasOne() bool                { return true }
func (e ExpressionSet[L2, W2]) IsOne(l *rational.Expr[L2, W2]) bool { return l.IsOne() }

func (e ExpressionSet[L2, W2]) Alphabet() []rune { return nil }

func (e ExpressionSet[L2, W2]) Equal(a, b *rational.Expr[L2, W2]) bool {
	return e.Print(a) == e.Print(b)
}
func (e ExpressionSet[L2, W2]) Less(a, b *rational.Expr[L2, W2]) bool {
	return e.Print(a) < e.Print(b)
}

func (e ExpressionSet[L2, W2]) Parse(s string, pos int) (*rational.Expr[L2, W2], int, error) {
	parser := rational.NewParser[L2, W2](s[pos:], e.Inner, e.Weights)
	expr, err := parser.ParseExpr()
	if err != nil {
		return nil, pos, err
	}
	return expr, pos + parser.Pos(), nil
}

func (e ExpressionSet[L2, W2]) Print(l *rational.Expr[L2, W2]) string {
	return rational.Print(l, e.Inner, e.Weights)
}

func (e ExpressionSet[L2, W2]) EncodeJSON(l *rational.Expr[L2, W2]) *jsonfmt.Node {
	return jsonfmt.NewString(e.Print(l))
}

func (e ExpressionSet[L2, W2]) DecodeJSON(n *jsonfmt.Node) (*rational.Expr[L2, W2], error) {
	s, ok := n.AsString()
	if !ok {
		return nil, awerr.InvalidArg("label", "expected an expression string")
	}
	v, _, err := e.Parse(s, 0)
	return v, err
}
