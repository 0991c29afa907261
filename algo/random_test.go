package algo

import (
	"math/rand"
	"testing"

	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

func boolCtx(t *testing.T, alphabet string) (*ctx.Context[rune, bool], []rune) {
	t.Helper()
	letters := []rune(alphabet)
	labels := label.NewLetterSet(letters)
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	return c, letters
}

func TestRandomEveryStateReachableFromState0(t *testing.T) {
	c, letters := boolCtx(t, "ab")
	rng := rand.New(rand.NewSource(1))
	a := Random(c, letters, 8, 0.3, 2, 2, rng)

	if a.NumStates() != 8+2 { // +2 for Pre/Post
		t.Fatalf("NumStates() = %d, want %d", a.NumStates(), 10)
	}

	// Every live state must be accessible from Pre, since Random wires
	// state 0 as initial and guarantees every other state is reachable
	// from it via the unreached-set worklist.
	acc := Accessible(a)
	for _, q := range a.States() {
		if !acc[q] {
			t.Errorf("state %v not accessible; Random should connect every state", q)
		}
	}
}

func TestRandomDeterministicIsCompleteAndDeterministic(t *testing.T) {
	c, letters := boolCtx(t, "ab")
	rng := rand.New(rand.NewSource(42))
	a := RandomDeterministic(c, letters, 5, rng)

	if !IsDeterministic(a) {
		t.Error("RandomDeterministic's output should be deterministic")
	}
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		n := 0
		for _, tid := range a.Out(q) {
			if a.DstOf(tid) != automaton.Post {
				n++
			}
		}
		if n != len(letters) {
			t.Errorf("state %v has %d outgoing letter transitions, want exactly %d (one per letter)", q, n, len(letters))
		}
	}
}

func TestConcatenateAcceptsConcatenationOfLanguages(t *testing.T) {
	c, _ := boolCtx(t, "ab")
	// onlyA accepts exactly "a"; onlyB accepts exactly "b".
	onlyA := automaton.New(c)
	a0 := onlyA.AddState("a0")
	a1 := onlyA.AddState("a1")
	onlyA.SetInitial(a0, true)
	onlyA.SetFinal(a1, true)
	onlyA.NewTransition(a0, a1, 'a', true)

	onlyB := automaton.New(c)
	b0 := onlyB.AddState("b0")
	b1 := onlyB.AddState("b1")
	onlyB.SetInitial(b0, true)
	onlyB.SetFinal(b1, true)
	onlyB.NewTransition(b0, b1, 'b', true)

	cat := Concatenate(onlyA, onlyB)
	if err := Proper(cat, Forward); err != nil {
		t.Fatalf("Proper: %v", err)
	}
	cases := []struct {
		word string
		want bool
	}{
		{"ab", true},
		{"a", false},
		{"b", false},
		{"ba", false},
		{"abab", false},
	}
	for _, tc := range cases {
		if got := Accepts(cat, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(Concatenate(a,b), %q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}
