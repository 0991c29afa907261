package label

import "testing"

func TestLetterSetDedupeAndSort(t *testing.T) {
	l := NewLetterSet([]rune("cab a"))
	got := string(l.Alphabet())
	want := " abc"
	if got != want {
		t.Errorf("Alphabet() = %q, want %q", got, want)
	}
}

func TestLetterSetParse(t *testing.T) {
	l := NewLetterSet([]rune("ab"))
	r, pos, err := l.Parse("ab", 0)
	if err != nil || r != 'a' || pos != 1 {
		t.Fatalf("Parse(ab,0) = %q, %d, %v, want a, 1, nil", r, pos, err)
	}
	if _, _, err := l.Parse("z", 0); err == nil {
		t.Error("expected an error parsing a letter outside the alphabet")
	}
}

func TestLetterSetJSONRoundTrip(t *testing.T) {
	l := NewLetterSet([]rune("ab"))
	n := l.EncodeJSON('a')
	got, err := l.DecodeJSON(n)
	if err != nil || got != 'a' {
		t.Fatalf("DecodeJSON(EncodeJSON('a')) = %q, %v, want a, nil", got, err)
	}
}

func TestNullableSetEpsilon(t *testing.T) {
	n := NewNullableSet([]rune("ab"))
	if !n.IsOne(n.One()) {
		t.Error("One() should be the epsilon label")
	}
	letter, pos, err := n.Parse("a", 0)
	if err != nil || letter.IsEpsilon || letter.Letter != 'a' || pos != 1 {
		t.Fatalf("Parse(a,0) = %+v, %d, %v", letter, pos, err)
	}
	eps, pos, err := n.Parse("", 0)
	if err != nil || !eps.IsEpsilon || pos != 0 {
		t.Fatalf("Parse(\"\",0) = %+v, %d, %v, want epsilon", eps, pos, err)
	}
}

func TestWordSetConcatenation(t *testing.T) {
	w := NewWordSet([]rune("ab"))
	if !w.IsOne(w.One()) {
		t.Error("One() should be the empty word")
	}
	if w.Equal("ab", "ab") == false {
		t.Error("equal words should compare equal")
	}
}

func TestOneSetSingleton(t *testing.T) {
	var o OneSet
	if !o.IsOne(o.One()) {
		t.Error("OneSet's only label should satisfy IsOne")
	}
	if len(o.Alphabet()) != 0 {
		t.Error("OneSet has no alphabet")
	}
}

func TestTupleSet2Projections(t *testing.T) {
	s1 := NewLetterSet([]rune("ab"))
	s2 := NewLetterSet([]rune("xy"))
	ts := TupleSet2[rune, rune]{S1: s1, S2: s2}
	if ts.Project1().(LetterSet).Alphabet()[0] != 'a' {
		t.Error("Project1 should expose the first tape's labelset")
	}
	if ts.Project2().(LetterSet).Alphabet()[0] != 'x' {
		t.Error("Project2 should expose the second tape's labelset")
	}
	tup := Tuple2[rune, rune]{First: 'a', Second: 'x'}
	if !ts.Equal(tup, tup) {
		t.Error("a tuple should equal itself")
	}
}
