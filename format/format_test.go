package format

import (
	"math/big"
	"strings"
	"testing"

	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

func evenAsAutomaton(t *testing.T) AnyAutomaton {
	t.Helper()
	labels := label.NewLetterSet(defaultAlphabet)
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
	return anyAutomaton[rune, bool]{a, defaultAlphabet}
}

func TestJSONRoundTripThroughRegistry(t *testing.T) {
	want := evenAsAutomaton(t)
	text := EncodeAutomatonText(want, 80)
	got, err := ParseAutomatonText(text)
	if err != nil {
		t.Fatalf("ParseAutomatonText: %v", err)
	}
	if got.ContextName() != want.ContextName() {
		t.Errorf("ContextName() = %q, want %q", got.ContextName(), want.ContextName())
	}
	for _, word := range []string{"", "a", "aa", "aba", "abab"} {
		if got.Accepts([]rune(word)) != want.Accepts([]rune(word)) {
			t.Errorf("round-tripped automaton disagrees on %q", word)
		}
	}
}

func TestParseAutomatonUnknownContext(t *testing.T) {
	_, err := ParseAutomatonText(`{"context":"nonexistent","states":[],"transitions":[]}`)
	if err == nil {
		t.Error("expected an error for an unregistered context name")
	}
}

func TestFadoRoundTrip(t *testing.T) {
	want := evenAsAutomaton(t)
	text, err := EncodeFadoText(want)
	if err != nil {
		t.Fatalf("EncodeFadoText: %v", err)
	}
	got, err := ParseFadoText(text, defaultAlphabet)
	if err != nil {
		t.Fatalf("ParseFadoText: %v", err)
	}
	for _, word := range []string{"", "a", "aa", "aba", "abab"} {
		if got.Accepts([]rune(word)) != want.Accepts([]rune(word)) {
			t.Errorf("FAdo round trip disagrees on %q", word)
		}
	}
}

func TestGrailRoundTrip(t *testing.T) {
	want := evenAsAutomaton(t)
	text, err := EncodeGrailText(want)
	if err != nil {
		t.Fatalf("EncodeGrailText: %v", err)
	}
	got, err := ParseGrailText(text, defaultAlphabet)
	if err != nil {
		t.Fatalf("ParseGrailText: %v", err)
	}
	for _, word := range []string{"", "a", "aa", "aba", "abab"} {
		if got.Accepts([]rune(word)) != want.Accepts([]rune(word)) {
			t.Errorf("Grail round trip disagrees on %q", word)
		}
	}
}

func TestEncodeFadoRejectsNonBooleanContext(t *testing.T) {
	// A non-(rune,bool) automaton cannot be encoded as FAdo/Grail.
	zLabels := label.NewLetterSet(defaultAlphabet)
	zCtx, zerr := ctx.New[rune, *big.Int](zLabels, weightset.ZSemiring{})
	if zerr != nil {
		t.Fatalf("ctx.New: %v", zerr)
	}
	zAut := automaton.New(zCtx)
	wrapped := anyAutomaton[rune, *big.Int]{zAut, defaultAlphabet}
	if _, err := EncodeFadoText(wrapped); err == nil {
		t.Error("EncodeFadoText should reject a non-Boolean context")
	}
	if _, err := EncodeGrailText(wrapped); err == nil {
		t.Error("EncodeGrailText should reject a non-Boolean context")
	}
}

func TestWriteDotContainsStatesAndLabels(t *testing.T) {
	a := evenAsAutomaton(t)
	var buf strings.Builder
	if err := a.WriteDot(&buf); err != nil {
		t.Fatalf("WriteDot: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph") {
		t.Error("WriteDot should emit a digraph block")
	}
	if !strings.Contains(out, "doublecircle") {
		t.Error("WriteDot should mark the final state with doublecircle")
	}
}

func TestAutomatonAlgebraThroughAnyAutomaton(t *testing.T) {
	a := evenAsAutomaton(t)
	if !a.IsDeterministic() {
		t.Error("evenAs should be deterministic")
	}
	det := a.Determinize()
	if !det.IsDeterministic() {
		t.Error("Determinize() result should be deterministic")
	}
	min := a.Minimize()
	for _, word := range []string{"", "a", "aa", "aba", "abab"} {
		if min.Accepts([]rune(word)) != a.Accepts([]rune(word)) {
			t.Errorf("Minimize changed acceptance of %q", word)
		}
	}
	words := a.Enumerate(2)
	if len(words) == 0 {
		t.Error("Enumerate(2) should find accepted length-2 words")
	}
}

func TestExprRegistryParseAndConvert(t *testing.T) {
	e, err := ParseExpr("lal_char_b", "(a+b)*.b.b.(a+b)*")
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	if e.String() != "(a+b)*.b.b.(a+b)*" {
		t.Errorf("String() = %q, want the original text", e.String())
	}
	aut, err := e.ExpToAut("canonical")
	if err != nil {
		t.Fatalf("ExpToAut: %v", err)
	}
	if err := aut.Proper(); err != nil {
		t.Fatalf("Proper: %v", err)
	}
	for _, tc := range []struct {
		word string
		want bool
	}{
		{"", false},
		{"bb", true},
		{"abba", true},
	} {
		if got := aut.Accepts([]rune(tc.word)); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}

	derived := e.DerivedTerm()
	if !derived.Accepts([]rune("bb")) {
		t.Error("derived-term automaton should accept bb")
	}
}

func TestExprRegistryUnknownContext(t *testing.T) {
	if _, err := ParseExpr("nonexistent", "a"); err == nil {
		t.Error("expected an error for an unregistered expression context")
	}
}
