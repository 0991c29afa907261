package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// evenAsJSON is a hand-built lal_char_b document accepting words over
// {a,b} with an even number of a's, used as the fixture document every
// verb test feeds in on stdin.
const evenAsJSON = `{
	"context": "lal_char_b",
	"states": [
		{"id": "q0", "initial": true, "final": true},
		{"id": "q1"}
	],
	"transitions": [
		{"source": "q0", "destination": "q1", "label": "a", "weight": true},
		{"source": "q0", "destination": "q0", "label": "b", "weight": true},
		{"source": "q1", "destination": "q0", "label": "a", "weight": true},
		{"source": "q1", "destination": "q1", "label": "b", "weight": true}
	]
}`

// runVerb feeds stdin to v and captures what it writes to stdout,
// returning the exit code alongside it.
func runVerb(t *testing.T, name string, args []string, stdin string) (string, int) {
	t.Helper()
	v, ok := verbs[name]
	if !ok {
		t.Fatalf("no such verb %q", name)
	}

	oldStdin, oldStdout := os.Stdin, os.Stdout
	defer func() { os.Stdin, os.Stdout = oldStdin, oldStdout }()

	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	go func() {
		io.WriteString(inW, stdin)
		inW.Close()
	}()
	os.Stdin = inR

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = outW

	code := v.run(args)

	outW.Close()
	var buf bytes.Buffer
	io.Copy(&buf, outR)

	return buf.String(), code
}

func TestCatRoundTripsJSON(t *testing.T) {
	out, code := runVerb(t, "cat", nil, evenAsJSON)
	if code != exitOK {
		t.Fatalf("cat exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(out, "lal_char_b") {
		t.Errorf("cat output missing context name: %s", out)
	}
}

func TestEvalAcceptsAndRejects(t *testing.T) {
	_, code := runVerb(t, "eval", []string{"-S", "", "aa"}, evenAsJSON)
	if code != exitOK {
		t.Errorf("eval(aa) exit code = %d, want %d (even a-count)", code, exitOK)
	}
	_, code = runVerb(t, "eval", []string{"-S", "", "a"}, evenAsJSON)
	if code != exitFalse {
		t.Errorf("eval(a) exit code = %d, want %d (odd a-count)", code, exitFalse)
	}
}

func TestIsDeterministicReportsTrue(t *testing.T) {
	out, code := runVerb(t, "is-deterministic", []string{""}, evenAsJSON)
	if code != exitOK {
		t.Errorf("is-deterministic exit code = %d, want %d", code, exitOK)
	}
	if strings.TrimSpace(out) != "true" {
		t.Errorf("is-deterministic output = %q, want \"true\"", out)
	}
}

func TestEnumerateListsLengthTwoWords(t *testing.T) {
	out, code := runVerb(t, "enumerate", []string{"", "2"}, evenAsJSON)
	if code != exitOK {
		t.Fatalf("enumerate exit code = %d, want %d", code, exitOK)
	}
	lines := strings.Fields(out)
	if len(lines) == 0 {
		t.Fatal("enumerate(2) produced no words")
	}
	for _, w := range lines {
		if len(w) != 2 {
			t.Errorf("enumerate(2) produced word %q of length %d", w, len(w))
		}
	}
}

func TestDeterminizeThenMinimizeRemainsEquivalent(t *testing.T) {
	det, code := runVerb(t, "determinize", nil, evenAsJSON)
	if code != exitOK {
		t.Fatalf("determinize exit code = %d, want %d", code, exitOK)
	}
	out, code := runVerb(t, "minimize", nil, det)
	if code != exitOK {
		t.Fatalf("minimize exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(out, "lal_char_b") {
		t.Errorf("minimize output missing context name: %s", out)
	}
}

func TestDotContainsDigraphHeader(t *testing.T) {
	out, code := runVerb(t, "dot", nil, evenAsJSON)
	if code != exitOK {
		t.Fatalf("dot exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(out, "digraph") {
		t.Errorf("dot output missing digraph header: %s", out)
	}
}

func TestListIncludesKnownVerbs(t *testing.T) {
	out, code := runVerb(t, "list", nil, "")
	if code != exitOK {
		t.Fatalf("list exit code = %d, want %d", code, exitOK)
	}
	for _, name := range []string{"cat", "determinize", "product", "eval", "exp-to-aut"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing verb %q", name)
		}
	}
}

func TestHelpUnknownVerbFails(t *testing.T) {
	_, code := runVerb(t, "help", []string{"nonexistent"}, "")
	if code != exitInvalidInput {
		t.Errorf("help nonexistent exit code = %d, want %d", code, exitInvalidInput)
	}
}

func TestCatRejectsMalformedJSON(t *testing.T) {
	_, code := runVerb(t, "cat", nil, "not json at all")
	if code == exitOK {
		t.Error("cat should fail on malformed input")
	}
}
