package algo

import "awali.dev/awali/automaton"

// SCC computes the automaton's strongly-connected components via Tarjan's
// algorithm, returning a map from state to its component id. Pre and Post
// are singleton components with the reserved ids 0 and 1 respectively,
// matching the reserved StateID convention they already carry, so callers
// that branch on "is this the trivial pre/post component" can compare
// against automaton.Pre/automaton.Post-typed ids directly.
func SCC[L, W any](a *automaton.Automaton[L, W]) map[automaton.StateID]int {
	t := &tarjan[L, W]{
		a:       a,
		index:   make(map[automaton.StateID]int),
		lowlink: make(map[automaton.StateID]int),
		onStack: make(map[automaton.StateID]bool),
		comp:    make(map[automaton.StateID]int),
	}
	t.comp[automaton.Pre] = 0
	t.comp[automaton.Post] = 1
	t.nextComp = 2
	for _, q := range a.States() {
		if _, done := t.index[q]; !done {
			t.strongConnect(q)
		}
	}
	return t.comp
}

type tarjan[L, W any] struct {
	a        *automaton.Automaton[L, W]
	index    map[automaton.StateID]int
	lowlink  map[automaton.StateID]int
	onStack  map[automaton.StateID]bool
	stack    []automaton.StateID
	nextIdx  int
	comp     map[automaton.StateID]int
	nextComp int
}

func (t *tarjan[L, W]) strongConnect(v automaton.StateID) {
	t.index[v] = t.nextIdx
	t.lowlink[v] = t.nextIdx
	t.nextIdx++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, tid := range t.a.Out(v) {
		w := t.a.DstOf(tid)
		if _, done := t.index[w]; !done {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}
	if v == automaton.Pre || v == automaton.Post {
		// Pre/Post already own reserved component ids; just drain them
		// off the stack without allocating a new component.
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			if w != automaton.Pre && w != automaton.Post {
				t.comp[w] = t.comp[v]
			}
			if w == v {
				break
			}
		}
		return
	}
	id := t.nextComp
	t.nextComp++
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		if w == automaton.Pre || w == automaton.Post {
			// Pre/Post reachable in a cycle with v would be a
			// contradiction (they have no outgoing/incoming non-epsilon
			// edges back into the body); defensively keep their own ids.
			t.comp[w] = t.comp[automaton.Pre]
			if w == automaton.Post {
				t.comp[w] = t.comp[automaton.Post]
			}
		} else {
			t.comp[w] = id
		}
		if w == v {
			break
		}
	}
}

// Condensation contracts every SCC to a single node, returning the
// resulting DAG as an adjacency list keyed by component id.
func Condensation[L, W any](a *automaton.Automaton[L, W], comp map[automaton.StateID]int) map[int]map[int]bool {
	dag := make(map[int]map[int]bool)
	for _, q := range a.States() {
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			cq, cd := comp[q], comp[dst]
			if cq == cd {
				continue
			}
			if dag[cq] == nil {
				dag[cq] = make(map[int]bool)
			}
			dag[cq][cd] = true
		}
	}
	return dag
}
