package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"awali.dev/awali/automaton"
	"awali.dev/awali/awerr"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

// WriteGrail renders a Boolean-weighted, letter-labeled automaton in the
// Grail/MERL line format: one "(START) -> q" line per initial state, one
// "q -> (FINAL)" line per final state, and one "q -> q' l" line per
// labeled transition (Grail has no notation for an epsilon transition
// carrying a non-trivial weight, so epsilon transitions are written with
// the bare arrow and no trailing label field).
func WriteGrail(w io.Writer, a *automaton.Automaton[rune, bool]) error {
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		if a.IsInitial(q) {
			fmt.Fprintf(w, "(START) -> %s\n", a.StateName(q))
		}
	}
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		if a.IsFinal(q) {
			fmt.Fprintf(w, "%s -> (FINAL)\n", a.StateName(q))
		}
	}
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			if dst == automaton.Post {
				continue
			}
			if a.IsEpsilon(tid) {
				fmt.Fprintf(w, "%s -> %s\n", a.StateName(q), a.StateName(dst))
				continue
			}
			fmt.Fprintf(w, "%s -> %s %c\n", a.StateName(q), a.StateName(dst), a.LabelOf(tid))
		}
	}
	return nil
}

// ReadGrail parses the Grail/MERL NFA text format into a Boolean
// letterset automaton over alphabet.
func ReadGrail(r io.Reader, alphabet []rune) (*automaton.Automaton[rune, bool], error) {
	labels := label.NewLetterSet(alphabet)
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		return nil, err
	}
	a := automaton.New(c)

	states := map[string]automaton.StateID{}
	stateOf := func(name string) automaton.StateID {
		if q, ok := states[name]; ok {
			return q
		}
		q := a.AddState(name)
		states[name] = q
		return q
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "->" {
			continue
		}
		lhs, rhs := fields[0], fields[2]
		switch {
		case lhs == "(START)":
			a.SetInitial(stateOf(rhs), true)
		case rhs == "(FINAL)":
			a.SetFinal(stateOf(lhs), true)
		case len(fields) == 3:
			a.NewEpsilonTransition(stateOf(lhs), stateOf(rhs), true)
		default:
			l := []rune(fields[3])[0]
			a.NewTransition(stateOf(lhs), stateOf(rhs), l, true)
		}
	}
	return a, sc.Err()
}

// ParseGrailText decodes a Grail/MERL document as an AnyAutomaton over
// the lal_char_b context (the only context the format can represent).
func ParseGrailText(text string, alphabet []rune) (AnyAutomaton, error) {
	a, err := ReadGrail(strings.NewReader(text), alphabet)
	if err != nil {
		return nil, err
	}
	return anyAutomaton[rune, bool]{a, alphabet}, nil
}

// EncodeGrailText renders a as a Grail/MERL document; it fails with
// UnsupportedErr for any context other than lal_char_b.
func EncodeGrailText(a AnyAutomaton) (string, error) {
	h, ok := a.(anyAutomaton[rune, bool])
	if !ok {
		return "", awerr.Unsupported("grail", a.ContextName())
	}
	var buf bytes.Buffer
	if err := WriteGrail(&buf, h.a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
