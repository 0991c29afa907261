package jsonfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLeaves(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"null", NewNull()},
		{"true", NewBool(true)},
		{"false", NewBool(false)},
		{"42", NewInt(42)},
		{"-7", NewInt(-7)},
		{"3.5", NewFloat(3.5)},
		{"1e2", NewFloat(100)},
		{`"hi\n"`, NewString("hi\n")},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseObjectAndArray(t *testing.T) {
	n, err := Parse(`{"a": [1, 2, 3], "b": {"c": null}}`)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := n.At("a", "1"); !ok || got.Int != 2 {
		t.Errorf("At(a,1) = %v, %v", got, ok)
	}
	if !n.HasPath("b", "c") {
		t.Error("expected path b/c to resolve")
	}
	if n.HasPath("b", "d") {
		t.Error("did not expect path b/d to resolve")
	}
}

func TestParseErrorPath(t *testing.T) {
	_, err := Parse(`{"a": [1, x]}`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "/a/1") {
		t.Errorf("expected error path /a/1, got %v", err)
	}
}

func TestEarlyStop(t *testing.T) {
	n, err := ParseWithOptions(`{"format": {"name":"fsm-json"}, "metadata": {"name":"x"}, "data": garbage!!!}`, Options{EarlyStopAfterMetadata: true})
	if err != nil {
		t.Fatalf("unexpected error with early stop: %v", err)
	}
	if !n.HasChild("metadata") {
		t.Error("expected metadata to have been parsed")
	}
	if n.HasChild("data") {
		t.Error("data should not have been reached")
	}
}

func TestRoundTrip(t *testing.T) {
	const src = `{"kind": "Automaton", "data": {"states": [{"id": 0}, {"id": 1}], "transitions": []}}`
	n, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	printed := Print(n, PrintOptions{})
	n2, err := Parse(printed)
	if err != nil {
		t.Fatalf("reparsing printed output: %v\n%s", err, printed)
	}
	if diff := cmp.Diff(n, n2); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintWidthAware(t *testing.T) {
	arr := NewArray()
	for i := 0; i < 20; i++ {
		arr.Elems = append(arr.Elems, NewInt(int64(i)))
	}
	out := Print(arr, PrintOptions{Width: 30})
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 30 {
			t.Errorf("line exceeds width budget: %q", line)
		}
	}
}
