package algo

import "awali.dev/awali/automaton"

// pairState names a product state by its two factor states; being a plain
// comparable struct, it serves directly as a map key.
type pairState struct{ p, q automaton.StateID }

// Product builds the (Hadamard / shuffle-free) product automaton of a
// and b: a state per reachable pair, weight the multiplication of each
// factor's weight, label the shared label. Both operands must share a
// label type; weights are drawn from a's context (both must share a
// weightset too - callers mismatching weightsets get whatever Mul(a,b)
// their single Context's semiring defines, which is the expected
// behavior for all concrete semirings in this package).
//
// Initial pair-states are seeded directly from a's and b's Pre
// out-transitions, the same way eval.go seeds its vector, rather than by
// walking a synthetic pairState{Pre,Pre}: Pre's out-transitions carry
// initial weights, not letters, so matching them against each other as if
// they were ordinary labeled transitions would both mislabel the result
// and leave the true initial pair-states unreachable.
func Product[L, W any](a, b *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
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
			for _, tb := range b.Out(p.q) {
				if b.IsEpsilon(tb) || b.DstOf(tb) == automaton.Post || !a.Ctx.Labels.Equal(a.LabelOf(ta), b.LabelOf(tb)) {
					continue
				}
				next := pairState{a.DstOf(ta), b.DstOf(tb)}
				nid := stateOf(next)
				w := weights.Mul(a.WeightOf(ta), b.WeightOf(tb))
				out.AddTransition(pid, nid, a.LabelOf(ta), w)
			}
		}
	}
	return out
}

// Sum builds the disjoint-union automaton of a and b: every state of
// both kept with its own transitions and final weight, and every initial
// state of either operand stays initial with its original initial weight
// (no fresh initial state and no epsilon transitions are added, unlike
// standard.go's Standardize).
func Sum[L, W any](a, b *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
	out := automaton.New(a.Ctx)

	copyInto := func(src *automaton.Automaton[L, W]) map[automaton.StateID]automaton.StateID {
		remap := map[automaton.StateID]automaton.StateID{}
		for _, q := range src.States() {
			if q == automaton.Pre || q == automaton.Post {
				continue
			}
			remap[q] = out.AddState(src.StateName(q))
		}
		for _, q := range src.States() {
			if q == automaton.Pre || q == automaton.Post {
				continue
			}
			if src.IsFinal(q) {
				out.SetFinal(remap[q], src.FinalWeight(q))
			}
			for _, tid := range src.Out(q) {
				dst := src.DstOf(tid)
				if dst == automaton.Post {
					continue
				}
				if src.IsEpsilon(tid) {
					out.NewEpsilonTransition(remap[q], remap[dst], src.WeightOf(tid))
				} else {
					out.NewTransition(remap[q], remap[dst], src.LabelOf(tid), src.WeightOf(tid))
				}
			}
		}
		return remap
	}

	remapA := copyInto(a)
	remapB := copyInto(b)

	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post || !a.IsInitial(q) {
			continue
		}
		out.AddInitial(remapA[q], a.InitialWeight(q))
	}
	for _, q := range b.States() {
		if q == automaton.Pre || q == automaton.Post || !b.IsInitial(q) {
			continue
		}
		out.AddInitial(remapB[q], b.InitialWeight(q))
	}
	return out
}
