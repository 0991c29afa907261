package weightset

import (
	"strings"

	"awali.dev/awali/jsonfmt"
)

// Tuple2 is a pair of weights drawn from two (possibly different)
// semirings, combined componentwise. It is the weightset counterpart of a
// tupleset label: a transducer with k tapes composes k weightsets the same
// way it composes k labelsets.
type Tuple2[W1, W2 any] struct {
	First  W1
	Second W2
}

// TupleSemiring2 combines two semirings componentwise.
type TupleSemiring2[W1, W2 any] struct {
	S1 Semiring[W1]
	S2 Semiring[W2]
}

var _ Semiring[Tuple2[bool, bool]] = TupleSemiring2[bool, bool]{}

func (t TupleSemiring2[W1, W2]) Name() string {
	return "(" + t.S1.Name() + " x " + t.S2.Name() + ")"
}

func (t TupleSemiring2[W1, W2]) Zero() Tuple2[W1, W2] {
	return Tuple2[W1, W2]{t.S1.Zero(), t.S2.Zero()}
}
func (t TupleSemiring2[W1, W2]) One() Tuple2[W1, W2] {
	return Tuple2[W1, W2]{t.S1.One(), t.S2.One()}
}

func (t TupleSemiring2[W1, W2]) Add(a, b Tuple2[W1, W2]) Tuple2[W1, W2] {
	return Tuple2[W1, W2]{t.S1.Add(a.First, b.First), t.S2.Add(a.Second, b.Second)}
}
func (t TupleSemiring2[W1, W2]) Mul(a, b Tuple2[W1, W2]) Tuple2[W1, W2] {
	return Tuple2[W1, W2]{t.S1.Mul(a.First, b.First), t.S2.Mul(a.Second, b.Second)}
}

func (t TupleSemiring2[W1, W2]) Star(x Tuple2[W1, W2]) (Tuple2[W1, W2], error) {
	s1, err := t.S1.Star(x.First)
	if err != nil {
		return Tuple2[W1, W2]{}, err
	}
	s2, err := t.S2.Star(x.Second)
	if err != nil {
		return Tuple2[W1, W2]{}, err
	}
	return Tuple2[W1, W2]{s1, s2}, nil
}

func (t TupleSemiring2[W1, W2]) Equal(a, b Tuple2[W1, W2]) bool {
	return t.S1.Equal(a.First, b.First) && t.S2.Equal(a.Second, b.Second)
}
func (t TupleSemiring2[W1, W2]) Less(a, b Tuple2[W1, W2]) bool {
	if !t.S1.Equal(a.First, b.First) {
		return t.S1.Less(a.First, b.First)
	}
	return t.S2.Less(a.Second, b.Second)
}
func (t TupleSemiring2[W1, W2]) IsZero(w Tuple2[W1, W2]) bool {
	return t.S1.IsZero(w.First) && t.S2.IsZero(w.Second)
}
func (t TupleSemiring2[W1, W2]) IsOne(w Tuple2[W1, W2]) bool {
	return t.S1.IsOne(w.First) && t.S2.IsOne(w.Second)
}
func (t TupleSemiring2[W1, W2]) IsCommutative() bool {
	return t.S1.IsCommutative() && t.S2.IsCommutative()
}
func (t TupleSemiring2[W1, W2]) ShowOne() bool { return t.S1.ShowOne() || t.S2.ShowOne() }
func (t TupleSemiring2[W1, W2]) StarStatus() StarStatus {
	s1, s2 := t.S1.StarStatus(), t.S2.StarStatus()
	if s1 > s2 {
		return s1
	}
	return s2
}

func (t TupleSemiring2[W1, W2]) Print(w Tuple2[W1, W2]) string {
	return "(" + t.S1.Print(w.First) + ", " + t.S2.Print(w.Second) + ")"
}

// Conv parses "(v1, v2)".
func (t TupleSemiring2[W1, W2]) Conv(s string, pos int) (Tuple2[W1, W2], int, error) {
	l := newLexer(s, pos)
	if l.peek() != '(' {
		return Tuple2[W1, W2]{}, pos, errExpected(pos, "'(' to start a tuple weight")
	}
	l.next()
	v1, p1, err := t.S1.Conv(s, l.pos)
	if err != nil {
		return Tuple2[W1, W2]{}, pos, err
	}
	l.pos = p1
	for l.peek() == ' ' {
		l.next()
	}
	if l.peek() != ',' {
		return Tuple2[W1, W2]{}, pos, errExpected(l.pos, "',' separating tuple components")
	}
	l.next()
	for l.peek() == ' ' {
		l.next()
	}
	v2, p2, err := t.S2.Conv(s, l.pos)
	if err != nil {
		return Tuple2[W1, W2]{}, pos, err
	}
	l.pos = p2
	if l.peek() != ')' {
		return Tuple2[W1, W2]{}, pos, errExpected(l.pos, "')' to close a tuple weight")
	}
	l.next()
	return Tuple2[W1, W2]{v1, v2}, l.pos, nil
}

func (t TupleSemiring2[W1, W2]) EncodeJSON(w Tuple2[W1, W2]) *jsonfmt.Node {
	return jsonfmt.NewArray(t.S1.EncodeJSON(w.First), t.S2.EncodeJSON(w.Second))
}

func (t TupleSemiring2[W1, W2]) DecodeJSON(n *jsonfmt.Node) (Tuple2[W1, W2], error) {
	if n == nil || n.Kind != jsonfmt.Array || len(n.Elems) != 2 {
		return Tuple2[W1, W2]{}, errExpected(0, "a 2-element tuple weight array")
	}
	v1, err := t.S1.DecodeJSON(n.Elems[0])
	if err != nil {
		return Tuple2[W1, W2]{}, err
	}
	v2, err := t.S2.DecodeJSON(n.Elems[1])
	if err != nil {
		return Tuple2[W1, W2]{}, err
	}
	return Tuple2[W1, W2]{v1, v2}, nil
}

// ParseRegisteredName splits a registry tuple name "(N1 x N2)" produced by
// Name() back into its components, used by the format package's closed
// registry when resolving a weightset name read from JSON.
func ParseRegisteredName(name string) ([]string, bool) {
	if !strings.HasPrefix(name, "(") || !strings.HasSuffix(name, ")") {
		return nil, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(name, "("), ")")
	parts := strings.Split(inner, " x ")
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}
