package automaton

import (
	"sort"

	"awali.dev/awali/awerr"
)

// Canon renumbers the automaton's states into a canonical order suitable
// for structural comparison across two automata that should be "the
// same" up to state numbering, the automaton-theoretic analogue of the
// teacher's Graph.Canon: a BFS from the initial states, labeling states in
// the order their adjacency is first discovered, sorted at each step by a
// comparison key so that ties break deterministically. Pre and Post keep
// their ids 0 and 1.
func (a *Automaton[L, W]) Canon() error {
	live := a.States()

	adjacency := make(map[StateID][]StateID, len(live))
	for _, q := range live {
		for _, tid := range a.states[q].out {
			t := a.trans[tid]
			if t.deleted {
				continue
			}
			adjacency[q] = append(adjacency[q], t.dst)
		}
	}

	oldToNew := make(map[StateID]StateID, len(live))
	oldToNew[Pre] = Pre
	oldToNew[Post] = Post
	nextLabel := StateID(2)

	queue := []StateID{Pre, Post}
	for _, q := range live {
		if a.IsInitial(q) && q != Pre && q != Post {
			queue = append(queue, q)
		}
	}

	labeled := map[StateID]bool{Pre: true, Post: true}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if labeled[n] {
			continue
		}
		if n != Pre && n != Post {
			oldToNew[n] = nextLabel
			nextLabel++
		}
		labeled[n] = true

		adj := append([]StateID{}, adjacency[n]...)
		sort.Slice(adj, func(i, j int) bool { return adj[i] < adj[j] })
		var fresh []StateID
		for _, to := range adj {
			if !labeled[to] {
				fresh = append(fresh, to)
			}
		}
		queue = append(queue, fresh...)
	}

	for _, q := range live {
		if !labeled[q] {
			return awerr.Domain("state %d is unreachable from any initial state", q)
		}
	}

	a.renumber(oldToNew)
	return nil
}

// renumber rewrites every state/transition slot according to the given
// old-to-new id mapping, mirroring Graph.renumber's edge rewrite-then-sort
// step.
func (a *Automaton[L, W]) renumber(oldToNew map[StateID]StateID) {
	newStates := make([]state, len(a.states))
	for old, st := range a.states {
		if st.deleted {
			continue
		}
		nid, ok := oldToNew[StateID(old)]
		if !ok {
			continue
		}
		newStates[nid] = st
	}
	a.states = newStates

	for i := range a.trans {
		if a.trans[i].deleted {
			continue
		}
		a.trans[i].src = oldToNew[a.trans[i].src]
		a.trans[i].dst = oldToNew[a.trans[i].dst]
	}

	for i := range a.states {
		sort.Slice(a.states[i].out, func(x, y int) bool {
			return a.transKey(a.states[i].out[x]) < a.transKey(a.states[i].out[y])
		})
		sort.Slice(a.states[i].in, func(x, y int) bool {
			return a.transKey(a.states[i].in[x]) < a.transKey(a.states[i].in[y])
		})
	}
}

// transKey orders transitions by (dst, src) for a deterministic adjacency
// listing after renumbering.
func (a *Automaton[L, W]) transKey(t TransID) int {
	tr := a.trans[t]
	return int(tr.dst)*1_000_003 + int(tr.src)
}
