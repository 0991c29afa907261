package weightset

import (
	"math/big"
	"testing"
)

func TestBSemiring(t *testing.T) {
	b := BSemiring{}
	if !b.Add(true, false) {
		t.Error("true OR false should be true")
	}
	if b.Mul(true, false) {
		t.Error("true AND false should be false")
	}
	if s, err := b.Star(false); err != nil || !s {
		t.Errorf("star(false) = %v, %v, want true, nil", s, err)
	}
}

func TestZSemiringStar(t *testing.T) {
	z := ZSemiring{}
	if s, err := z.Star(big.NewInt(0)); err != nil || s.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("star(0) = %v, %v, want 1, nil", s, err)
	}
	if _, err := z.Star(big.NewInt(2)); err == nil {
		t.Error("star(2) should fail to converge in Z")
	}
}

func TestZSemiringArith(t *testing.T) {
	z := ZSemiring{}
	a, b := big.NewInt(7), big.NewInt(3)
	if got := z.Add(a, b); got.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("Add(7,3) = %v, want 10", got)
	}
	if got := z.Mul(a, b); got.Cmp(big.NewInt(21)) != 0 {
		t.Errorf("Mul(7,3) = %v, want 21", got)
	}
	if got := z.Sub(a, b); got.Cmp(big.NewInt(4)) != 0 {
		t.Errorf("Sub(7,3) = %v, want 4", got)
	}
}

func TestQSemiringStar(t *testing.T) {
	q := QSemiring{}
	half := big.NewRat(1, 2)
	got, err := q.Star(half)
	if err != nil {
		t.Fatalf("star(1/2): %v", err)
	}
	if want := big.NewRat(2, 1); got.Cmp(want) != 0 {
		t.Errorf("star(1/2) = %v, want %v", got, want)
	}
	if _, err := q.Star(big.NewRat(3, 2)); err == nil {
		t.Error("star(3/2) should not converge")
	}
}

func TestConvPrintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		w    Semiring[*big.Int]
		text string
	}{
		{"zero", ZSemiring{}, "0"},
		{"positive", ZSemiring{}, "42"},
		{"negative", ZSemiring{}, "-7"},
	}
	for _, tc := range tests {
		v, pos, err := tc.w.Conv(tc.text, 0)
		if err != nil {
			t.Fatalf("%s: Conv(%q): %v", tc.name, tc.text, err)
		}
		if pos != len(tc.text) {
			t.Errorf("%s: Conv(%q) consumed %d, want %d", tc.name, tc.text, pos, len(tc.text))
		}
		if got := tc.w.Print(v); got != tc.text {
			t.Errorf("%s: Print(Conv(%q)) = %q, want %q", tc.name, tc.text, got, tc.text)
		}
	}
}

func TestF2Semiring(t *testing.T) {
	f := F2Semiring{}
	if !f.IsZero(f.Add(true, true)) {
		t.Error("1 + 1 should be 0 in F2")
	}
}

func TestTropicalMinPlus(t *testing.T) {
	tr := TropicalMinPlusSemiring{}
	// Add is min, Mul is plus; zero is +infinity.
	if got := tr.Mul(tr.One(), tr.One()); !tr.Equal(got, tr.Mul(tr.One(), tr.One())) {
		t.Errorf("Mul should be deterministic")
	}
}
