package algo

import (
	"math/big"
	"testing"

	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/rational"
	"awali.dev/awali/weightset"
)

// evenAs builds the classic two-state automaton accepting words over {a,b}
// with an even number of a's: q0 (initial, final) loops to itself on b,
// crosses to q1 on a; q1 loops on b, crosses back to q0 on a.
func evenAs(t *testing.T) (*automaton.Automaton[rune, bool], automaton.StateID, automaton.StateID) {
	t.Helper()
	labels := label.NewLetterSet([]rune("ab"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	a := automaton.New(c)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	a.SetInitial(q0, true)
	a.SetFinal(q0, true)
	a.NewTransition(q0, q1, 'a', true)
	a.NewTransition(q0, q0, 'b', true)
	a.NewTransition(q1, q0, 'a', true)
	a.NewTransition(q1, q1, 'b', true)
	return a, q0, q1
}

func TestEvalAcceptsEvenNumberOfAs(t *testing.T) {
	a, _, _ := evenAs(t)
	cases := []struct {
		word string
		want bool
	}{
		{"", true},
		{"a", false},
		{"aa", true},
		{"aba", true},
		{"abab", true},
		{"b", true},
		{"bb", true},
	}
	for _, tc := range cases {
		if got := Accepts(a, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestIsDeterministic(t *testing.T) {
	a, q0, _ := evenAs(t)
	if !IsDeterministic(a) {
		t.Error("evenAs should already be deterministic")
	}
	q2 := a.AddState("q2")
	a.NewTransition(q0, q2, 'a', true)
	if IsDeterministic(a) {
		t.Error("q0 now has two a-transitions, should no longer be deterministic")
	}
}

func TestIsTrimAndTrimRemovesDeadStates(t *testing.T) {
	a, _, q1 := evenAs(t)
	dead := a.AddState("dead")
	a.NewTransition(q1, dead, 'a', true)
	// dead is accessible but not coaccessible (no path onward to Post).
	if IsTrim(a) {
		t.Error("automaton with an unreachable-to-final state should not be trim")
	}
	Trim(a)
	if !IsTrim(a) {
		t.Error("Trim should leave a trim automaton")
	}
	for _, q := range a.States() {
		if q == dead {
			t.Error("Trim should have deleted the dead state")
		}
	}
}

func TestEnumerateAndShortestWords(t *testing.T) {
	a, _, _ := evenAs(t)
	words := Enumerate(a, 2)
	if len(words) == 0 {
		t.Fatal("Enumerate(2) returned no words")
	}
	for _, w := range words {
		if len(w.Text) != 2 {
			t.Errorf("Enumerate(2) returned word %q of length %d", w.Text, len(w.Text))
		}
		if !w.Weight {
			t.Errorf("Enumerate(2) returned word %q with zero weight", w.Text)
		}
	}
	short := ShortestWords(a, 1, 4)
	if len(short) != 1 || short[0].Text != "" {
		t.Errorf("ShortestWords(1,4) = %+v, want the empty word first", short)
	}
}

func TestProductIntersectsLanguages(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	// accepts words starting with 'a'
	startsA := automaton.New(c)
	s0 := startsA.AddState("s0")
	s1 := startsA.AddState("s1")
	startsA.SetInitial(s0, true)
	startsA.SetFinal(s1, true)
	startsA.NewTransition(s0, s1, 'a', true)
	startsA.NewTransition(s1, s1, 'a', true)
	startsA.NewTransition(s1, s1, 'b', true)

	even, _, _ := evenAs(t)

	prod := Product(startsA, even)
	cases := []struct {
		word string
		want bool
	}{
		{"a", false},  // starts with a but odd a-count
		{"aa", true},  // starts with a, even a-count
		{"ab", false}, // starts with a but odd a-count
		{"b", false},  // does not start with a
		{"aab", true}, // starts with a, even a-count
	}
	for _, tc := range cases {
		if got := Accepts(prod, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(product, %q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestSumUnionsLanguages(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	onlyA := automaton.New(c)
	p0 := onlyA.AddState("p0")
	onlyA.SetInitial(p0, true)
	onlyA.SetFinal(p0, true)
	onlyA.NewTransition(p0, p0, 'a', true)

	onlyB := automaton.New(c)
	r0 := onlyB.AddState("r0")
	onlyB.SetInitial(r0, true)
	onlyB.SetFinal(r0, true)
	onlyB.NewTransition(r0, r0, 'b', true)

	sum := Sum(onlyA, onlyB)
	for _, tc := range []struct {
		word string
		want bool
	}{
		{"", true},
		{"aaa", true},
		{"bbb", true},
		{"ab", false},
	} {
		if got := Accepts(sum, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(sum, %q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestDerivedTermMatchesDirectEval(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	weights := weightset.BSemiring{}
	c, err := ctx.New[rune, bool](labels, weights)
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	e, err := rational.Parse[rune, bool]("(a+b)*.b.b.(a+b)*", labels, weights)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a := DerivedTerm(c, e, labels)
	for _, tc := range []struct {
		word string
		want bool
	}{
		{"", false},
		{"bb", true},
		{"abba", true},
		{"ab", false},
		{"abab", false},
	} {
		if got := Accepts(a, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(derived-term, %q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestThompsonThenProperAccepts(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	weights := weightset.BSemiring{}
	c, err := ctx.New[rune, bool](labels, weights)
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	e, err := rational.Parse[rune, bool]("(a+b)*.b.b.(a+b)*", labels, weights)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := ThompsonFrom(c, e, DefaultOptions())
	if err != nil {
		t.Fatalf("ThompsonFrom: %v", err)
	}
	if IsProper(a) {
		t.Fatal("canonical Thompson construction should introduce epsilon transitions")
	}
	if err := Proper(a, Forward); err != nil {
		t.Fatalf("Proper: %v", err)
	}
	if !IsProper(a) {
		t.Error("Proper should remove every epsilon transition")
	}
	for _, tc := range []struct {
		word string
		want bool
	}{
		{"", false},
		{"bb", true},
		{"abba", true},
		{"ab", false},
	} {
		if got := Accepts(a, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(thompson+proper, %q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestThompsonWeightedRejectsNonStarrableStar(t *testing.T) {
	labels := label.NewLetterSet([]rune("a"))
	weights := weightset.ZSemiring{}
	c, err := ctx.New[rune, *big.Int](labels, weights)
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	one := rational.NewOne[rune, *big.Int]()
	e := rational.NewStar(rational.NewSum(one, one)) // c((1+1)*) diverges in Z
	opts := DefaultOptions()
	opts.Thompson = "weighted"
	if _, err := ThompsonFrom(c, e, opts); err == nil {
		t.Error("weighted Thompson should reject a star whose constant term is not starrable")
	}
}

func TestDeterminizeOfAlreadyDeterministicAutomaton(t *testing.T) {
	a, _, _ := evenAs(t)
	det := Determinize(a, []rune("ab"), DefaultOptions())
	for _, word := range []string{"", "a", "aa", "aba", "abab"} {
		if Accepts(det, []rune(word)) != Accepts(a, []rune(word)) {
			t.Errorf("Determinize changed acceptance of %q", word)
		}
	}
	if !IsDeterministic(det) {
		t.Error("Determinize's output should be deterministic")
	}
}

func TestShuffleInterleavesLetters(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
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

	sh := Shuffle(onlyA, onlyB)
	cases := []struct {
		word string
		want bool
	}{
		{"ab", true},
		{"ba", true},
		{"a", false},
		{"b", false},
		{"aabb", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Accepts(sh, []rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(Shuffle(a,b), %q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestInfiltrationIncludesBothProductAndShuffleWords(t *testing.T) {
	labels := label.NewLetterSet([]rune("a"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	// Both operands accept exactly "a".
	onlyA1 := automaton.New(c)
	p0 := onlyA1.AddState("p0")
	p1 := onlyA1.AddState("p1")
	onlyA1.SetInitial(p0, true)
	onlyA1.SetFinal(p1, true)
	onlyA1.NewTransition(p0, p1, 'a', true)

	onlyA2 := automaton.New(c)
	q0 := onlyA2.AddState("q0")
	q1 := onlyA2.AddState("q1")
	onlyA2.SetInitial(q0, true)
	onlyA2.SetFinal(q1, true)
	onlyA2.NewTransition(q0, q1, 'a', true)

	inf := Infiltration(onlyA1, onlyA2)
	// Product(onlyA1, onlyA2) alone only accepts "a" (synchronous move);
	// Shuffle(onlyA1, onlyA2) alone only accepts "aa" (both advance
	// separately). Infiltration must accept both.
	for _, word := range []string{"a", "aa"} {
		if !Accepts(inf, []rune(word)) {
			t.Errorf("Accepts(Infiltration, %q) = false, want true", word)
		}
	}
	if Accepts(inf, []rune("aaa")) {
		t.Error("Accepts(Infiltration, \"aaa\") = true, want false")
	}
}

func TestIsSequential(t *testing.T) {
	a, _, _ := evenAs(t)
	if !IsSequential(a) {
		t.Error("evenAs should be sequential: deterministic with one initial state")
	}
	q2 := a.AddState("q2")
	a.SetInitial(q2, true)
	if IsSequential(a) {
		t.Error("a second initial state should make evenAs non-sequential")
	}
}

func TestIsAmbiguousDetectsTwoAcceptingRuns(t *testing.T) {
	a, _, _ := evenAs(t)
	if IsAmbiguous(a) {
		t.Error("evenAs is deterministic, so it cannot be ambiguous")
	}

	// A nondeterministic automaton accepting "a" via two distinct paths.
	labels := label.NewLetterSet([]rune("a"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	amb := automaton.New(c)
	s0 := amb.AddState("s0")
	s1 := amb.AddState("s1")
	s2 := amb.AddState("s2")
	amb.SetInitial(s0, true)
	amb.SetFinal(s1, true)
	amb.SetFinal(s2, true)
	amb.NewTransition(s0, s1, 'a', true)
	amb.NewTransition(s0, s2, 'a', true)
	if !IsAmbiguous(amb) {
		t.Error("two distinct a-transitions to two final states should be ambiguous")
	}
}
