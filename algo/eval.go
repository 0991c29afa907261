package algo

import "awali.dev/awali/automaton"

// Eval computes the weight a (proper) automaton assigns to the word
// spelled by letters, by propagating a weighted state vector one letter
// at a time: vector[q] accumulates the weight of every path from an
// initial state to q reading the letters consumed so far, the standard
// matrix-vector-product evaluation of a weighted automaton.
func Eval[L, W any](a *automaton.Automaton[L, W], letters []L) W {
	weights := a.Ctx.Weights
	vector := map[automaton.StateID]W{}
	for _, tid := range a.Out(automaton.Pre) {
		dst := a.DstOf(tid)
		vector[dst] = weights.Add(getW(vector, dst, weights), a.WeightOf(tid))
	}

	for _, l := range letters {
		next := map[automaton.StateID]W{}
		for q, w := range vector {
			if weights.IsZero(w) {
				continue
			}
			for _, tid := range a.Out(q) {
				if a.IsEpsilon(tid) || !a.Ctx.Labels.Equal(a.LabelOf(tid), l) {
					continue
				}
				dst := a.DstOf(tid)
				contrib := weights.Mul(w, a.WeightOf(tid))
				next[dst] = weights.Add(getW(next, dst, weights), contrib)
			}
		}
		vector = next
	}

	total := weights.Zero()
	for q, w := range vector {
		total = weights.Add(total, weights.Mul(w, a.FinalWeight(q)))
	}
	return total
}

func getW[W any](m map[automaton.StateID]W, q automaton.StateID, weights interface{ Zero() W }) W {
	if w, ok := m[q]; ok {
		return w
	}
	return weights.Zero()
}

// Accepts reports whether a assigns a non-zero weight to letters.
func Accepts[L, W any](a *automaton.Automaton[L, W], letters []L) bool {
	return !a.Ctx.Weights.IsZero(Eval(a, letters))
}
