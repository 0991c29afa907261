package algo

import "awali.dev/awali/automaton"

// Concatenate builds the automaton recognizing L(a)*L(b): standardizes
// both operands (standard.go's Standardize gives each a single fresh
// initial state of weight one), copies both into a fresh result, then
// replaces each of the standardized a's final weights with an epsilon
// transition of that weight into the standardized b's initial state.
// The result is final only through b, so accepting a run means running
// all the way through a and then all the way through b.
func Concatenate[L, W any](a, b *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
	sa := Standardize(a)
	sb := Standardize(b)
	c := a.Ctx
	out := automaton.New(c)

	remapA := map[automaton.StateID]automaton.StateID{automaton.Pre: automaton.Pre, automaton.Post: automaton.Post}
	for _, q := range sa.States() {
		if q != automaton.Pre && q != automaton.Post {
			remapA[q] = out.AddState(sa.StateName(q))
		}
	}
	remapB := map[automaton.StateID]automaton.StateID{automaton.Pre: automaton.Pre, automaton.Post: automaton.Post}
	for _, q := range sb.States() {
		if q != automaton.Pre && q != automaton.Post {
			remapB[q] = out.AddState(sb.StateName(q))
		}
	}

	copyTransitions := func(src *automaton.Automaton[L, W], remap map[automaton.StateID]automaton.StateID) {
		for _, q := range src.States() {
			if q == automaton.Pre || q == automaton.Post {
				continue
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
	}
	copyTransitions(sa, remapA)
	copyTransitions(sb, remapB)

	var aInit, bInit automaton.StateID
	for _, q := range sa.States() {
		if q != automaton.Pre && q != automaton.Post && sa.IsInitial(q) {
			aInit = remapA[q]
		}
	}
	for _, q := range sb.States() {
		if q != automaton.Pre && q != automaton.Post && sb.IsInitial(q) {
			bInit = remapB[q]
		}
	}
	out.AddInitial(aInit, c.Weights.One())

	for _, q := range sa.States() {
		if q == automaton.Pre || q == automaton.Post || !sa.IsFinal(q) {
			continue
		}
		out.NewEpsilonTransition(remapA[q], bInit, sa.FinalWeight(q))
	}
	for _, q := range sb.States() {
		if q == automaton.Pre || q == automaton.Post || !sb.IsFinal(q) {
			continue
		}
		out.SetFinal(remapB[q], sb.FinalWeight(q))
	}
	return out
}
