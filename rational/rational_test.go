package rational_test

import (
	"math/big"
	"testing"

	"awali.dev/awali/label"
	. "awali.dev/awali/rational"
	"awali.dev/awali/weightset"
)

func TestParsePrintRoundTrip(t *testing.T) {
	labels := label.NewLetterSet([]rune("ab"))
	weights := weightset.BSemiring{}
	tests := []string{
		"a",
		"a+b",
		"a.b",
		"a*",
		"a{+}",
		"a?",
		"(a+b)*.b.b.(a+b)*",
	}
	for _, text := range tests {
		e, err := Parse[rune, bool](text, labels, weights)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		got := Print(e, labels, weights)
		if got != text {
			t.Errorf("Print(Parse(%q)) = %q, want %q", text, got, text)
		}
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	labels := label.NewLetterSet([]rune("a"))
	if _, err := Parse[rune, bool]("a)", labels, weightset.BSemiring{}); err == nil {
		t.Error("expected an error for unbalanced trailing content")
	}
}

func TestParseEpsilonAndZero(t *testing.T) {
	labels := label.NewLetterSet([]rune("a"))
	weights := weightset.BSemiring{}
	e, err := Parse[rune, bool](`\e`, labels, weights)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !e.IsOne() {
		t.Error(`\e should parse to the One node`)
	}
	z, err := Parse[rune, bool](`\z`, labels, weights)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !z.IsZero() {
		t.Error(`\z should parse to the Zero node`)
	}
}

func TestReduceTrivialIdentities(t *testing.T) {
	weights := weightset.BSemiring{}
	a := NewAtom[rune, bool]('a')

	// a + 0 == a
	sum := NewSum[rune, bool](a, NewZero[rune, bool]())
	if r := Reduce(sum, Trivial, weights); r.Op != Atom {
		t.Errorf("Reduce(a+0) = %v, want atom", r.Op)
	}

	// a . 1 == a
	prod := NewProd[rune, bool](a, NewOne[rune, bool]())
	if r := Reduce(prod, Trivial, weights); r.Op != Atom {
		t.Errorf("Reduce(a.1) = %v, want atom", r.Op)
	}

	// a . 0 == 0
	prodZero := NewProd[rune, bool](a, NewZero[rune, bool]())
	if r := Reduce(prodZero, Trivial, weights); !r.IsZero() {
		t.Errorf("Reduce(a.0) = %v, want zero", r.Op)
	}

	// flattening: (a+a)+a collapses into one n-ary sum
	nested := NewSum[rune, bool](NewSum[rune, bool](a, a), a)
	r := Reduce(nested, Trivial, weights)
	if r.Op != Sum || len(r.Kids) != 3 {
		t.Errorf("Reduce((a+a)+a) = %+v, want a flat 3-ary sum", r)
	}
}

func TestReduceSeriesWeightIdentities(t *testing.T) {
	weights := weightset.ZSemiring{}
	atom := NewAtom[rune, *big.Int]('a')

	lw := NewLWeight[rune, *big.Int](weights.One(), atom)
	if r := Reduce(lw, Series, weights); r.Op != Atom {
		t.Errorf("Reduce(<1>a) = %v, want atom (weight-one dropped)", r.Op)
	}

	lwZero := NewLWeight[rune, *big.Int](weights.Zero(), atom)
	if r := Reduce(lwZero, Series, weights); !r.IsZero() {
		t.Errorf("Reduce(<0>a) = %v, want zero", r.Op)
	}
}

func TestConstantTermStarAndPlus(t *testing.T) {
	weights := weightset.BSemiring{}
	a := NewAtom[rune, bool]('a')
	star := NewStar(a)
	c, err := ConstantTerm(star, weights)
	if err != nil {
		t.Fatalf("ConstantTerm(a*): %v", err)
	}
	if !c {
		t.Error("c(a*) should be true (one)")
	}

	plus := NewPlus(a)
	cp, err := ConstantTerm(plus, weights)
	if err != nil {
		t.Fatalf("ConstantTerm(a{+}): %v", err)
	}
	if cp {
		t.Error("c(a{+}) should be false: a does not match the empty word")
	}
}

func TestConstantTermNonStarrableErrors(t *testing.T) {
	weights := weightset.ZSemiring{}
	one := NewOne[rune, *big.Int]()
	sum := NewSum[rune, *big.Int](one, one)
	star := NewStar(sum)
	if _, err := ConstantTerm(star, weights); err == nil {
		t.Error("c((1+1)*) should fail to converge in Z")
	}
}
