package algo

import "awali.dev/awali/automaton"

// LinearReduce shrinks a weighted automaton, over any weightset, by
// merging states with an *identical* outgoing behavior: the same final
// weight and the same sequence of (label, weight, destination)
// transitions, compared through their printed forms. This is only the
// easy, non-numeric slice of the full Schutzenberger/Howell reduction
// algorithm (which runs Gaussian elimination over the transition
// matrices): a state whose row is a scalar multiple or a linear
// combination of other rows is not merged (see DESIGN.md).
func LinearReduce[L, W any](a *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
	weights := a.Ctx.Weights
	states := a.States()

	sig := func(q automaton.StateID) string {
		s := weights.Print(a.FinalWeight(q)) + "|"
		for _, tid := range a.Out(q) {
			lbl := ""
			if !a.IsEpsilon(tid) {
				lbl = a.Ctx.Labels.Print(a.LabelOf(tid))
			}
			s += lbl + ":" + weights.Print(a.WeightOf(tid)) + "->" + itoaKey(int(a.DstOf(tid))) + ";"
		}
		return s
	}

	rep := map[string]automaton.StateID{}
	remap := map[automaton.StateID]automaton.StateID{automaton.Pre: automaton.Pre, automaton.Post: automaton.Post}
	for _, q := range states {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		k := sig(q)
		if r, ok := rep[k]; ok {
			remap[q] = r
			continue
		}
		rep[k] = q
		remap[q] = q
	}

	out := automaton.New(a.Ctx)
	fresh := map[automaton.StateID]automaton.StateID{automaton.Pre: automaton.Pre, automaton.Post: automaton.Post}
	for _, q := range states {
		if q == automaton.Pre || q == automaton.Post || remap[q] != q {
			continue
		}
		fresh[q] = out.AddState(a.StateName(q))
	}
	for _, q := range states {
		if q == automaton.Pre || q == automaton.Post || remap[q] != q {
			continue
		}
		oq := fresh[q]
		if a.IsInitial(q) {
			out.AddInitial(oq, a.InitialWeight(q))
		}
		if a.IsFinal(q) {
			out.SetFinal(oq, a.FinalWeight(q))
		}
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			if dst == automaton.Post {
				continue
			}
			rd := fresh[remap[dst]]
			if a.IsEpsilon(tid) {
				out.NewEpsilonTransition(oq, rd, a.WeightOf(tid))
			} else {
				out.NewTransition(oq, rd, a.LabelOf(tid), a.WeightOf(tid))
			}
		}
	}
	return out
}
