package algo

import (
	"awali.dev/awali/automaton"
)

// IsStandard reports whether a has a single initial state, that state's
// initial weight is weightset one, and it has no incoming transitions
// (standard form).
func IsStandard[L, W any](a *automaton.Automaton[L, W]) bool {
	var initial []automaton.StateID
	for _, q := range a.States() {
		if q != automaton.Pre && q != automaton.Post && a.IsInitial(q) {
			initial = append(initial, q)
		}
	}
	if len(initial) != 1 {
		return false
	}
	q := initial[0]
	if !a.Ctx.Weights.IsOne(a.InitialWeight(q)) {
		return false
	}
	for _, tid := range a.In(q) {
		if a.SrcOf(tid) != automaton.Pre {
			return false
		}
	}
	return true
}

// Standardize returns a new automaton in standard form: a single fresh
// initial state of weight one, carrying a copy of every transition that
// leaves an original initial state, its weight multiplied on the left by
// that state's initial weight (and likewise that state's final weight, if
// it is final). The original states keep their own transitions and final
// weights but are no longer initial; nothing enters the fresh state, so
// the result satisfies IsStandard.
func Standardize[L, W any](a *automaton.Automaton[L, W]) *automaton.Automaton[L, W] {
	c := a.Ctx
	out := automaton.New(c)
	remap := map[automaton.StateID]automaton.StateID{automaton.Pre: automaton.Pre, automaton.Post: automaton.Post}
	for _, q := range a.States() {
		if q != automaton.Pre && q != automaton.Post {
			remap[q] = out.AddState(a.StateName(q))
		}
	}
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		if a.IsFinal(q) {
			out.SetFinal(remap[q], a.FinalWeight(q))
		}
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			if dst == automaton.Post {
				continue
			}
			if a.IsEpsilon(tid) {
				out.NewEpsilonTransition(remap[q], remap[dst], a.WeightOf(tid))
			} else {
				out.NewTransition(remap[q], remap[dst], a.LabelOf(tid), a.WeightOf(tid))
			}
		}
	}

	newInit := out.AddState("standard-init")
	out.SetInitial(newInit, c.Weights.One())
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post || !a.IsInitial(q) {
			continue
		}
		w := a.InitialWeight(q)
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			tw := c.Weights.Mul(w, a.WeightOf(tid))
			if dst == automaton.Post {
				out.AddFinal(newInit, tw)
			} else if a.IsEpsilon(tid) {
				out.NewEpsilonTransition(newInit, remap[dst], tw)
			} else {
				out.AddTransition(newInit, remap[dst], a.LabelOf(tid), tw)
			}
		}
	}
	return out
}
