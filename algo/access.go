package algo

import "awali.dev/awali/automaton"

// Accessible returns the set of states reachable from an initial state,
// Pre/Post included, via a plain BFS frontier: pop a state, push its
// not-yet-seen successors.
func Accessible[L, W any](a *automaton.Automaton[L, W]) map[automaton.StateID]bool {
	seen := map[automaton.StateID]bool{automaton.Pre: true}
	queue := []automaton.StateID{automaton.Pre}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			if !seen[dst] {
				seen[dst] = true
				queue = append(queue, dst)
			}
		}
	}
	return seen
}

// Coaccessible returns the set of states that can reach Post, via the same
// frontier walk run over incoming transitions.
func Coaccessible[L, W any](a *automaton.Automaton[L, W]) map[automaton.StateID]bool {
	seen := map[automaton.StateID]bool{automaton.Post: true}
	queue := []automaton.StateID{automaton.Post}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, tid := range a.In(q) {
			src := a.SrcOf(tid)
			if !seen[src] {
				seen[src] = true
				queue = append(queue, src)
			}
		}
	}
	return seen
}

// Trim deletes every state that is not both accessible and coaccessible,
// in place.
func Trim[L, W any](a *automaton.Automaton[L, W]) {
	acc := Accessible(a)
	coacc := Coaccessible(a)
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		if !acc[q] || !coacc[q] {
			a.DelState(q)
		}
	}
}

// IsAccessible/IsCoaccessible/IsTrim are the Boolean forms of the
// accessibility/coaccessibility/trim invariants above.
func IsAccessible[L, W any](a *automaton.Automaton[L, W]) bool {
	return len(Accessible(a)) == a.NumStates()
}
func IsCoaccessible[L, W any](a *automaton.Automaton[L, W]) bool {
	return len(Coaccessible(a)) == a.NumStates()
}
func IsTrim[L, W any](a *automaton.Automaton[L, W]) bool {
	return IsAccessible(a) && IsCoaccessible(a)
}
