package algo

import "awali.dev/awali/automaton"

// Shuffle builds the interleaving product of a and b: a state per
// reachable pair, same pairState/stateOf shape as Product, but instead of
// requiring both sides to advance together on a shared label, each
// transition advances exactly one side while the other stays put. Both
// operands must share a label type and weightset.
func Shuffle[L, W any](a, b *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
	weights := a.Ctx.Weights
	out := automaton.New(a.Ctx)

	seen := map[pairState]automaton.StateID{}
	var queue []pairState

	stateOf := func(p pairState) automaton.StateID {
		if id, ok := seen[p]; ok {
			return id
		}
		id := out.AddState("")
		seen[p] = id
		queue = append(queue, p)
		return id
	}

	for _, ta := range a.Out(automaton.Pre) {
		for _, tb := range b.Out(automaton.Pre) {
			w := weights.Mul(a.WeightOf(ta), b.WeightOf(tb))
			if weights.IsZero(w) {
				continue
			}
			id := stateOf(pairState{a.DstOf(ta), b.DstOf(tb)})
			out.AddInitial(id, w)
		}
	}

	for i := 0; i < len(queue); i++ {
		p := queue[i]
		pid := seen[p]

		fw := weights.Mul(a.FinalWeight(p.p), b.FinalWeight(p.q))
		if !weights.IsZero(fw) {
			out.SetFinal(pid, fw)
		}

		for _, ta := range a.Out(p.p) {
			if a.IsEpsilon(ta) || a.DstOf(ta) == automaton.Post {
				continue
			}
			next := pairState{a.DstOf(ta), p.q}
			nid := stateOf(next)
			out.AddTransition(pid, nid, a.LabelOf(ta), a.WeightOf(ta))
		}
		for _, tb := range b.Out(p.q) {
			if b.IsEpsilon(tb) || b.DstOf(tb) == automaton.Post {
				continue
			}
			next := pairState{p.p, b.DstOf(tb)}
			nid := stateOf(next)
			out.AddTransition(pid, nid, b.LabelOf(tb), b.WeightOf(tb))
		}
	}
	return out
}

// Infiltration builds the union of Product's synchronous moves and
// Shuffle's one-side-advances moves over the same reachable pair-states:
// from (p, q), a transition fires either because both sides agree on a
// shared label (the Product case) or because exactly one side advances
// alone (the Shuffle case). AddTransition's merge-on-duplicate-label rule
// (see automaton.go) naturally sums the weight when a synchronous move
// and a lone move happen to land on the same destination pair with the
// same label, matching the combinatorial shuffle-product rule the
// construction is named for.
func Infiltration[L, W any](a, b *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
	weights := a.Ctx.Weights
	out := automaton.New(a.Ctx)

	seen := map[pairState]automaton.StateID{}
	var queue []pairState

	stateOf := func(p pairState) automaton.StateID {
		if id, ok := seen[p]; ok {
			return id
		}
		id := out.AddState("")
		seen[p] = id
		queue = append(queue, p)
		return id
	}

	for _, ta := range a.Out(automaton.Pre) {
		for _, tb := range b.Out(automaton.Pre) {
			w := weights.Mul(a.WeightOf(ta), b.WeightOf(tb))
			if weights.IsZero(w) {
				continue
			}
			id := stateOf(pairState{a.DstOf(ta), b.DstOf(tb)})
			out.AddInitial(id, w)
		}
	}

	for i := 0; i < len(queue); i++ {
		p := queue[i]
		pid := seen[p]

		fw := weights.Mul(a.FinalWeight(p.p), b.FinalWeight(p.q))
		if !weights.IsZero(fw) {
			out.SetFinal(pid, fw)
		}

		for _, ta := range a.Out(p.p) {
			if a.IsEpsilon(ta) || a.DstOf(ta) == automaton.Post {
				continue
			}
			la := a.LabelOf(ta)

			// Shuffle case: a alone advances, b stays.
			aloneA := pairState{a.DstOf(ta), p.q}
			out.AddTransition(pid, stateOf(aloneA), la, a.WeightOf(ta))

			// Product case: a and b advance together on a shared label.
			for _, tb := range b.Out(p.q) {
				if b.IsEpsilon(tb) || b.DstOf(tb) == automaton.Post || !a.Ctx.Labels.Equal(la, b.LabelOf(tb)) {
					continue
				}
				both := pairState{a.DstOf(ta), b.DstOf(tb)}
				w := weights.Mul(a.WeightOf(ta), b.WeightOf(tb))
				out.AddTransition(pid, stateOf(both), la, w)
			}
		}
		for _, tb := range b.Out(p.q) {
			if b.IsEpsilon(tb) || b.DstOf(tb) == automaton.Post {
				continue
			}
			// Shuffle case: b alone advances, a stays. The product case
			// above already covers both advancing together.
			aloneB := pairState{p.p, b.DstOf(tb)}
			out.AddTransition(pid, stateOf(aloneB), b.LabelOf(tb), b.WeightOf(tb))
		}
	}
	return out
}
