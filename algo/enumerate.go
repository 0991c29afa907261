package algo

import "awali.dev/awali/automaton"

// Word pairs a word (as printed labels joined in order) with the weight
// the automaton assigns it.
type Word[W any] struct {
	Text   string
	Weight W
}

// Enumerate lists every word of length exactly n accepted by a (with
// non-zero weight), via a bounded BFS over (state, length-so-far) pairs -
// the same frontier-walk shape as access.go, carrying an accumulated
// weight and printed prefix alongside each frontier state instead of just
// the state id. The frontier is seeded from Pre's initial-weight
// transitions directly (as Eval does) rather than starting the walk at
// Pre itself, since Pre's own out-transitions carry initial weights, not
// letters, and must not be mistaken for the first step.
func Enumerate[L, W any](a *automaton.Automaton[L, W], n int) []Word[W] {
	weights := a.Ctx.Weights
	type item struct {
		q      automaton.StateID
		prefix string
		w      W
	}
	var frontier []item
	for _, tid := range a.Out(automaton.Pre) {
		frontier = append(frontier, item{a.DstOf(tid), "", a.WeightOf(tid)})
	}
	for step := 0; step < n; step++ {
		var next []item
		for _, it := range frontier {
			for _, tid := range a.Out(it.q) {
				if a.IsEpsilon(tid) || a.DstOf(tid) == automaton.Post {
					continue
				}
				dst := a.DstOf(tid)
				w := weights.Mul(it.w, a.WeightOf(tid))
				if weights.IsZero(w) {
					continue
				}
				next = append(next, item{dst, it.prefix + a.Ctx.Labels.Print(a.LabelOf(tid)), w})
			}
		}
		frontier = next
	}
	var out []Word[W]
	for _, it := range frontier {
		w := weights.Mul(it.w, a.FinalWeight(it.q))
		if weights.IsZero(w) {
			continue
		}
		out = append(out, Word[W]{Text: it.prefix, Weight: w})
	}
	return out
}

// ShortestWords lists up to limit accepted words of minimal total
// length, breaking ties in length-then-lexicographic order of
// Enumerate's output, by growing n from zero until enough words are
// found or a length cap is hit.
func ShortestWords[L, W any](a *automaton.Automaton[L, W], limit, maxLen int) []Word[W] {
	var out []Word[W]
	for n := 0; n <= maxLen && len(out) < limit; n++ {
		out = append(out, Enumerate(a, n)...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
