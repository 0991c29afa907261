package algo

import (
	"testing"

	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

// identityLikeTransducer builds a single-state, always-initial-and-final
// transducer looping over pairs, one self-loop per entry in pairs.
func identityLikeTransducer(t *testing.T, alphabet1, alphabet2 string, pairs [][2]rune) *automaton.Automaton[label.Tuple2[rune, rune], bool] {
	t.Helper()
	tapes := label.TupleSet2[rune, rune]{
		S1: label.NewLetterSet([]rune(alphabet1)),
		S2: label.NewLetterSet([]rune(alphabet2)),
	}
	c, err := ctx.New[label.Tuple2[rune, rune], bool](tapes, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	a := automaton.New(c)
	q0 := a.AddState("q0")
	a.SetInitial(q0, true)
	a.SetFinal(q0, true)
	for _, p := range pairs {
		a.NewTransition(q0, q0, label.Tuple2[rune, rune]{First: p[0], Second: p[1]}, true)
	}
	return a
}

// TestComposeChainsTwoPartialIdentities composes a transducer rewriting
// a->x, b->y with one rewriting x->p, y->q, and checks the composed
// transducer relates exactly the pairs (a,p) and (b,q), matching neither
// operand's own relation and matching no other pairing.
func TestComposeChainsTwoPartialIdentities(t *testing.T) {
	first := identityLikeTransducer(t, "ab", "xy", [][2]rune{{'a', 'x'}, {'b', 'y'}})
	second := identityLikeTransducer(t, "xy", "pq", [][2]rune{{'x', 'p'}, {'y', 'q'}})

	outTapes := label.TupleSet2[rune, rune]{
		S1: label.NewLetterSet([]rune("ab")),
		S2: label.NewLetterSet([]rune("pq")),
	}
	outCtx, err := ctx.New[label.Tuple2[rune, rune], bool](outTapes, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}

	composed := Compose[rune, rune, rune, bool](outCtx, first, second, func(x, y rune) bool { return x == y })

	cases := []struct {
		in, out rune
		want    bool
	}{
		{'a', 'p', true},
		{'b', 'q', true},
		{'a', 'q', false},
		{'b', 'p', false},
	}
	for _, tc := range cases {
		word := []label.Tuple2[rune, rune]{{First: tc.in, Second: tc.out}}
		if got := Accepts(composed, word); got != tc.want {
			t.Errorf("Accepts(composed, (%c,%c)) = %v, want %v", tc.in, tc.out, got, tc.want)
		}
	}

	// The composed transducer's initial/final weights must themselves be
	// non-zero: a bug that seeds the worklist from a synthetic
	// pairState{Pre,Pre} (matched via InitialWeight(Pre), which is
	// always zero since Pre has no self-loop) would make every word
	// evaluate to zero regardless of the relation above. Both operands'
	// single state is initial and final, so the empty pair is accepted.
	empty := []label.Tuple2[rune, rune]{}
	if !Accepts(composed, empty) {
		t.Error("composed transducer should accept the empty pair: its initial state is also final")
	}
}

// TestProjectAndInverseRoundTrip checks Project1/Project2 recover each
// tape's language and Inverse swaps the tapes.
func TestProjectAndInverseRoundTrip(t *testing.T) {
	trans := identityLikeTransducer(t, "ab", "xy", [][2]rune{{'a', 'x'}, {'b', 'y'}})

	inCtx, err := ctx.New[rune, bool](label.NewLetterSet([]rune("ab")), weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	inLang := Project1[rune, rune, bool](inCtx, trans)
	for _, tc := range []struct {
		word string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"ab", true},
		{"", true},
	} {
		if got := Accepts(inLang, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(Project1, %q) = %v, want %v", tc.word, got, tc.want)
		}
	}

	outCtx, err := ctx.New[rune, bool](label.NewLetterSet([]rune("xy")), weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	outLang := Project2[rune, rune, bool](outCtx, trans)
	for _, tc := range []struct {
		word string
		want bool
	}{
		{"x", true},
		{"y", true},
		{"a", false},
	} {
		if got := Accepts(outLang, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(Project2, %q) = %v, want %v", tc.word, got, tc.want)
		}
	}

	invCtx, err := ctx.New[label.Tuple2[rune, rune], bool](
		label.TupleSet2[rune, rune]{S1: label.NewLetterSet([]rune("xy")), S2: label.NewLetterSet([]rune("ab"))},
		weightset.BSemiring{},
	)
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	inv := Inverse[rune, rune, bool](invCtx, trans)
	for _, tc := range []struct {
		in, out rune
		want    bool
	}{
		{'x', 'a', true},
		{'y', 'b', true},
		{'a', 'x', false},
	} {
		word := []label.Tuple2[rune, rune]{{First: tc.in, Second: tc.out}}
		if got := Accepts(inv, word); got != tc.want {
			t.Errorf("Accepts(Inverse, (%c,%c)) = %v, want %v", tc.in, tc.out, got, tc.want)
		}
	}
}
