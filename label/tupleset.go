package label

import (
	"awali.dev/awali/awerr"
	"awali.dev/awali/jsonfmt"
)

// Tuple2 is a pair of per-tape labels, the label type of a two-tape
// transducer. Higher arities follow the same shape (Tuple3, ...); only
// the 2-tape case is realized here, the way a resolver package ships the
// concrete ecosystem resolvers it needs rather than a generic N-ary one.
type Tuple2[L1, L2 any] struct {
	First  L1
	Second L2
}

// TupleSet2 combines two (possibly heterogeneous) labelsets into the
// labelset of a two-tape transducer.
type TupleSet2[L1, L2 any] struct {
	S1 Set[L1]
	S2 Set[L2]
}

var _ Set[Tuple2[rune, rune]] = TupleSet2[rune, rune]{}

func (t TupleSet2[L1, L2]) Kind() Kind { return TupleKind }
func (t TupleSet2[L1, L2]) Name() string {
	return "tupleset<" + t.S1.Name() + "," + t.S2.Name() + ">"
}

func (t TupleSet2[L1, L2]) One() Tuple2[L1, L2] {
	return Tuple2[L1, L2]{t.S1.One(), t.S2.One()}
}
func (t TupleSet2[L1, L2]) HasOne() bool { return t.S1.HasOne() && t.S2.HasOne() }
func (t TupleSet2[L1, L2]) IsOne(l Tuple2[L1, L2]) bool {
	return t.S1.IsOne(l.First) && t.S2.IsOne(l.Second)
}

// Alphabet returns the first tape's alphabet; per-tape alphabets are
// reached via Project.
func (t TupleSet2[L1, L2]) Alphabet() []rune { return t.S1.Alphabet() }

func (t TupleSet2[L1, L2]) Equal(a, b Tuple2[L1, L2]) bool {
	return t.S1.Equal(a.First, b.First) && t.S2.Equal(a.Second, b.Second)
}
func (t TupleSet2[L1, L2]) Less(a, b Tuple2[L1, L2]) bool {
	if !t.S1.Equal(a.First, b.First) {
		return t.S1.Less(a.First, b.First)
	}
	return t.S2.Less(a.Second, b.Second)
}

// Parse reads "first|second" where first and second are each parsed by
// the respective tape's labelset over the remaining text up to the
// separator.
func (t TupleSet2[L1, L2]) Parse(s string, pos int) (Tuple2[L1, L2], int, error) {
	sep := -1
	for i := pos; i < len(s); i++ {
		if s[i] == '|' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return Tuple2[L1, L2]{}, pos, awerr.Parse(pos, "expected '|' separating tuple tapes")
	}
	v1, p1, err := t.S1.Parse(s[:sep], pos)
	if err != nil {
		return Tuple2[L1, L2]{}, pos, err
	}
	v2, p2, err := t.S2.Parse(s, sep+1)
	if err != nil {
		return Tuple2[L1, L2]{}, pos, err
	}
	_ = p1
	return Tuple2[L1, L2]{v1, v2}, p2, nil
}

func (t TupleSet2[L1, L2]) Print(l Tuple2[L1, L2]) string {
	return t.S1.Print(l.First) + "|" + t.S2.Print(l.Second)
}

func (t TupleSet2[L1, L2]) EncodeJSON(l Tuple2[L1, L2]) *jsonfmt.Node {
	return jsonfmt.NewArray(t.S1.EncodeJSON(l.First), t.S2.EncodeJSON(l.Second))
}

func (t TupleSet2[L1, L2]) DecodeJSON(n *jsonfmt.Node) (Tuple2[L1, L2], error) {
	if n == nil || n.Kind != jsonfmt.Array || len(n.Elems) != 2 {
		return Tuple2[L1, L2]{}, awerr.InvalidArg("label", "expected a 2-element tuple label array")
	}
	v1, err := t.S1.DecodeJSON(n.Elems[0])
	if err != nil {
		return Tuple2[L1, L2]{}, err
	}
	v2, err := t.S2.DecodeJSON(n.Elems[1])
	if err != nil {
		return Tuple2[L1, L2]{}, err
	}
	return Tuple2[L1, L2]{v1, v2}, nil
}

// Project1 and Project2 extract the per-tape labelsets. algo.Project1/
// Project2 take the projected context as an argument and do not call them.
func (t TupleSet2[L1, L2]) Project1() Set[L1] { return t.S1 }
func (t TupleSet2[L1, L2]) Project2() Set[L2] { return t.S2 }
