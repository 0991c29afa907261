package algo

import (
	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
)

// Compose builds the composition of two transducers sharing a middle
// tape: a over (L1, L2), b over (L2, L3), producing one over (L1, L3)
// whose accepted pairs (u, w) are exactly those for which some v makes
// (u, v) accepted by a and (v, w) accepted by b. States are pairs of
// source states, exactly the same worklist shape as Product, generalized
// to match transitions on the shared middle label instead of requiring
// the full label to coincide.
//
// Initial pair-states are seeded directly from a's and b's Pre
// out-transitions rather than by walking a synthetic pairState{Pre,Pre}
// through the eqL2 matching loop below (see product.go's doc comment for
// why): Pre's out-transitions carry initial weights tagged with the
// label type's One() value, not a real middle-tape letter, so matching
// them against eqL2 would both mislabel the result and leave the true
// initial pair-states unreachable. The main loop filters out dst==Post
// on both operands for the same reason on the final-weight side.
func Compose[L1, L2, L3, W any](
	outCtx *ctx.Context[label.Tuple2[L1, L3], W],
	a *automaton.Automaton[label.Tuple2[L1, L2], W],
	b *automaton.Automaton[label.Tuple2[L2, L3], W],
	eqL2 func(x, y L2) bool,
) *automaton.Automaton[label.Tuple2[L1, L3], W] {
	weights := a.Ctx.Weights
	out := automaton.New(outCtx)

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
			for _, tb := range b.Out(p.q) {
				if b.IsEpsilon(tb) || b.DstOf(tb) == automaton.Post {
					continue
				}
				lb := b.LabelOf(tb)
				if !eqL2(la.Second, lb.First) {
					continue
				}
				next := pairState{a.DstOf(ta), b.DstOf(tb)}
				nid := stateOf(next)
				w := weights.Mul(a.WeightOf(ta), b.WeightOf(tb))
				out.AddTransition(pid, nid, label.Tuple2[L1, L3]{First: la.First, Second: lb.Second}, w)
			}
		}
	}
	return out
}

// Project1 drops the second tape of a transducer, yielding the ordinary
// automaton recognizing the input language.
func Project1[L1, L2, W any](inCtx *ctx.Context[L1, W], a *automaton.Automaton[label.Tuple2[L1, L2], W]) *automaton.Automaton[L1, W] {
	return project(inCtx, a, func(l label.Tuple2[L1, L2]) L1 { return l.First })
}

// Project2 drops the first tape, yielding the automaton recognizing the
// output language.
func Project2[L1, L2, W any](outCtx *ctx.Context[L2, W], a *automaton.Automaton[label.Tuple2[L1, L2], W]) *automaton.Automaton[L2, W] {
	return project(outCtx, a, func(l label.Tuple2[L1, L2]) L2 { return l.Second })
}

func project[L1, L2, L, W any](targetCtx *ctx.Context[L, W], a *automaton.Automaton[label.Tuple2[L1, L2], W], pick func(label.Tuple2[L1, L2]) L) *automaton.Automaton[L, W] {
	out := automaton.New(targetCtx)
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
		if a.IsInitial(q) {
			out.AddInitial(remap[q], a.InitialWeight(q))
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
				continue
			}
			out.AddTransition(remap[q], remap[dst], pick(a.LabelOf(tid)), a.WeightOf(tid))
		}
	}
	return out
}

// Inverse swaps a transducer's two tapes.
func Inverse[L1, L2, W any](outCtx *ctx.Context[label.Tuple2[L2, L1], W], a *automaton.Automaton[label.Tuple2[L1, L2], W]) *automaton.Automaton[label.Tuple2[L2, L1], W] {
	out := automaton.New(outCtx)
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
		if a.IsInitial(q) {
			out.AddInitial(remap[q], a.InitialWeight(q))
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
				continue
			}
			l := a.LabelOf(tid)
			out.AddTransition(remap[q], remap[dst], label.Tuple2[L2, L1]{First: l.Second, Second: l.First}, a.WeightOf(tid))
		}
	}
	return out
}
