package algo

import "awali.dev/awali/automaton"

// Minimize runs Moore-style partition refinement (every state's signature
// is recomputed each round; there is no Hopcroft splitter queue) over a
// deterministic,
// complete-enough automaton (states with no transition on some letter are
// treated as an implicit dead class), merging states with the same
// final-weight class and the same per-letter successor class until the
// partition stabilizes, then quotients the automaton by the final
// partition.
func Minimize[L comparable, W any](a *automaton.Automaton[L, W], alphabet []L) *automaton.Automaton[L, W] {
	weights := a.Ctx.Weights
	states := a.States()

	class := map[automaton.StateID]int{}
	finalKey := func(q automaton.StateID) string {
		if q == automaton.Pre || q == automaton.Post {
			return "#"
		}
		return weights.Print(a.FinalWeight(q))
	}
	buckets := map[string]int{}
	for _, q := range states {
		k := finalKey(q)
		id, ok := buckets[k]
		if !ok {
			id = len(buckets)
			buckets[k] = id
		}
		class[q] = id
	}

	succClass := func(q automaton.StateID, l L) int {
		for _, tid := range a.Out(q) {
			if !a.IsEpsilon(tid) && a.Ctx.Labels.Equal(a.LabelOf(tid), l) {
				return class[a.DstOf(tid)]
			}
		}
		return -1
	}

	for {
		sig := map[automaton.StateID]string{}
		for _, q := range states {
			s := itoaKey(class[q]) + "|"
			for _, l := range alphabet {
				s += itoaKey(succClass(q, l)) + ","
			}
			sig[q] = s
		}
		newBuckets := map[string]int{}
		newClass := map[automaton.StateID]int{}
		for _, q := range states {
			k := sig[q]
			id, ok := newBuckets[k]
			if !ok {
				id = len(newBuckets)
				newBuckets[k] = id
			}
			newClass[q] = id
		}
		changed := false
		for _, q := range states {
			if newClass[q] != class[q] {
				changed = true
				break
			}
		}
		class = newClass
		if !changed {
			break
		}
	}

	out := automaton.New(a.Ctx)
	repState := map[int]automaton.StateID{}
	for _, q := range states {
		c := class[q]
		if q == automaton.Pre {
			repState[c] = automaton.Pre
			continue
		}
		if q == automaton.Post {
			repState[c] = automaton.Post
			continue
		}
		if _, ok := repState[c]; !ok {
			repState[c] = out.AddState("")
		}
	}
	for _, q := range states {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		rq := repState[class[q]]
		if a.IsFinal(q) {
			out.SetFinal(rq, a.FinalWeight(q))
		}
		if a.IsInitial(q) {
			out.AddInitial(rq, a.InitialWeight(q))
		}
		for _, tid := range a.Out(q) {
			if a.IsEpsilon(tid) {
				continue
			}
			dst := a.DstOf(tid)
			rd := repState[class[dst]]
			out.AddTransition(rq, rd, a.LabelOf(tid), a.WeightOf(tid))
		}
	}
	return out
}
