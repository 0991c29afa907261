package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"awali.dev/awali/automaton"
	"awali.dev/awali/awerr"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

// WriteFado renders a Boolean-weighted, letter-labeled automaton in the
// FAdo line format: "@NFA" header naming final states, then one
// "src label dst" line per transition, states numbered by allocation
// order and the initial state always 0 (FAdo assumes a single initial
// state; Standardize a multi-initial automaton before calling this).
func WriteFado(w io.Writer, a *automaton.Automaton[rune, bool]) error {
	ids, order := fadoNumbering(a)

	var finals []string
	for _, q := range order {
		if a.IsFinal(q) {
			finals = append(finals, strconv.Itoa(ids[q]))
		}
	}
	fmt.Fprintf(w, "@NFA %s\n", strings.Join(finals, " "))

	for _, q := range order {
		for _, tid := range a.Out(q) {
			if a.IsEpsilon(tid) {
				continue
			}
			dst := a.DstOf(tid)
			if dst == automaton.Post {
				continue
			}
			fmt.Fprintf(w, "%d %c %d\n", ids[q], a.LabelOf(tid), ids[dst])
		}
	}
	return nil
}

func fadoNumbering[W any](a *automaton.Automaton[rune, W]) (map[automaton.StateID]int, []automaton.StateID) {
	ids := map[automaton.StateID]int{}
	var order []automaton.StateID
	// The (first) initial state is numbered 0, matching FAdo's single-
	// initial-state convention.
	for _, q := range a.States() {
		if q != automaton.Pre && q != automaton.Post && a.IsInitial(q) {
			ids[q] = 0
			order = append(order, q)
			break
		}
	}
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		if _, ok := ids[q]; ok {
			continue
		}
		ids[q] = len(order)
		order = append(order, q)
	}
	return ids, order
}

// ReadFado parses the FAdo NFA text format into a Boolean letterset
// automaton over alphabet.
func ReadFado(r io.Reader, alphabet []rune) (*automaton.Automaton[rune, bool], error) {
	labels := label.NewLetterSet(alphabet)
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		return nil, err
	}
	a := automaton.New(c)

	sc := bufio.NewScanner(r)
	states := map[int]automaton.StateID{}
	stateOf := func(i int) automaton.StateID {
		if q, ok := states[i]; ok {
			return q
		}
		q := a.AddState(strconv.Itoa(i))
		states[i] = q
		return q
	}

	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if strings.HasPrefix(line, "@NFA") {
			for _, f := range fields[1:] {
				id, err := strconv.Atoi(f)
				if err != nil {
					continue
				}
				a.SetFinal(stateOf(id), true)
			}
			continue
		}
		if len(fields) != 3 {
			continue
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		dst, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		l := []rune(fields[1])[0]
		sq, dq := stateOf(src), stateOf(dst)
		if first {
			a.SetInitial(sq, true)
			first = false
		}
		a.NewTransition(sq, dq, l, true)
	}
	return a, sc.Err()
}

// ParseFadoText decodes a FAdo document as an AnyAutomaton over the
// lal_char_b context (the only context the format can represent).
func ParseFadoText(text string, alphabet []rune) (AnyAutomaton, error) {
	a, err := ReadFado(strings.NewReader(text), alphabet)
	if err != nil {
		return nil, err
	}
	return anyAutomaton[rune, bool]{a, alphabet}, nil
}

// EncodeFadoText renders a as a FAdo document; it fails with
// UnsupportedErr for any context other than lal_char_b.
func EncodeFadoText(a AnyAutomaton) (string, error) {
	h, ok := a.(anyAutomaton[rune, bool])
	if !ok {
		return "", awerr.Unsupported("fado", a.ContextName())
	}
	var buf bytes.Buffer
	if err := WriteFado(&buf, h.a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
