package algo

import (
	"sort"

	"awali.dev/awali/automaton"
)

// subset is a weighted subset of the source automaton's states: a map
// from source StateID to its accumulated weight in the current
// determinized state, canonicalized to a sorted-keys string for use as a
// map key.
type subset[W any] map[automaton.StateID]W

func subsetKey[W any](s subset[W], print func(W) string) string {
	ids := make([]int, 0, len(s))
	for q := range s {
		ids = append(ids, int(q))
	}
	sort.Ints(ids)
	out := ""
	for _, id := range ids {
		out += itoaKey(id) + ":" + print(s[automaton.StateID(id)]) + ";"
	}
	return out
}

func itoaKey(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	p := len(buf)
	for i > 0 {
		p--
		buf[p] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		p--
		buf[p] = '-'
	}
	return string(buf[p:])
}

// Determinize runs the weighted subset construction on a (proper) labelled
// automaton over a letter alphabet, respecting opts.ExploreByLength and
// opts.ExploreWithBound as early-stop limits: a state discovered past the
// bound is simply not expanded further, leaving a partial (but still
// valid, prefix-closed) result rather than erroring.
//
// Grounded on the same worklist-of-not-yet-expanded-nodes shape as
// access.go, generalized from a frontier of single states to a frontier
// of weighted subsets.
func Determinize[L comparable, W any](a *automaton.Automaton[L, W], alphabet []L, opts Options) *automaton.Automaton[L, W] {
	weights := a.Ctx.Weights
	out := automaton.New(a.Ctx)

	start := subset[W]{}
	for _, tid := range a.Out(automaton.Pre) {
		dst := a.DstOf(tid)
		w := a.WeightOf(tid)
		start[dst] = weights.Add(get(start, dst, weights), w)
	}

	seen := map[string]automaton.StateID{}
	var order []string
	var sets []subset[W]

	key := func(s subset[W]) string { return subsetKey(s, weights.Print) }

	stateOf := func(s subset[W]) (automaton.StateID, bool) {
		k := key(s)
		if id, ok := seen[k]; ok {
			return id, false
		}
		id := out.AddState(k)
		seen[k] = id
		order = append(order, k)
		sets = append(sets, s)
		return id, true
	}

	startID, _ := stateOf(start)
	out.SetInitial(startID, weights.One())

	depth := map[automaton.StateID]int{startID: 0}

	for i := 0; i < len(sets); i++ {
		s := sets[i]
		qid := seen[order[i]]

		if opts.ExploreByLength > 0 && depth[qid] >= opts.ExploreByLength {
			continue
		}
		if opts.ExploreWithBound > 0 && len(order) > opts.ExploreWithBound {
			break
		}

		final := weights.Zero()
		for q, w := range s {
			final = weights.Add(final, weights.Mul(w, a.FinalWeight(q)))
		}
		if !weights.IsZero(final) {
			out.SetFinal(qid, final)
		}

		for _, l := range alphabet {
			next := subset[W]{}
			for q, w := range s {
				for _, tid := range a.Out(q) {
					if a.IsEpsilon(tid) || !a.Ctx.Labels.Equal(a.LabelOf(tid), l) {
						continue
					}
					dst := a.DstOf(tid)
					contrib := weights.Mul(w, a.WeightOf(tid))
					next[dst] = weights.Add(get(next, dst, weights), contrib)
				}
			}
			if len(next) == 0 {
				continue
			}
			nid, fresh := stateOf(next)
			if fresh {
				depth[nid] = depth[qid] + 1
			}
			out.NewTransition(qid, nid, l, weights.One())
		}
	}
	return out
}

func get[W any](s subset[W], q automaton.StateID, weights interface{ Zero() W }) W {
	if w, ok := s[q]; ok {
		return w
	}
	return weights.Zero()
}

// IsDeterministic reports whether every state has at most one outgoing
// transition per label and no epsilon transitions.
func IsDeterministic[L, W any](a *automaton.Automaton[L, W]) bool {
	for _, q := range a.States() {
		seenLabels := map[string]bool{}
		for _, tid := range a.Out(q) {
			if a.IsEpsilon(tid) {
				return false
			}
			k := a.Ctx.Labels.Print(a.LabelOf(tid))
			if seenLabels[k] {
				return false
			}
			seenLabels[k] = true
		}
	}
	return true
}

// IsSequential reports whether a is deterministic and additionally has at
// most one initial state: the labelset-only condition under which a
// weighted automaton is its own subset construction, needing no
// Determinize pass at all.
func IsSequential[L, W any](a *automaton.Automaton[L, W]) bool {
	if !IsDeterministic(a) {
		return false
	}
	initials := 0
	for _, q := range a.States() {
		if q != automaton.Pre && q != automaton.Post && a.IsInitial(q) {
			initials++
		}
	}
	return initials <= 1
}

// IsAmbiguous reports whether some word admits two distinct accepting
// runs. Decided the same way IsTrim decides accessibility/coaccessibility
// (access.go): build the pair automaton of a with itself, synchronously
// stepping both copies on a shared label exactly as Product does, then
// check whether any reachable pair (p, q) with p != q is coaccessible to
// a pair where both components are final — such a pair witnesses two
// runs over the same word ending (possibly at different final states) in
// two different places.
func IsAmbiguous[L, W any](a *automaton.Automaton[L, W]) bool {
	weights := a.Ctx.Weights

	seen := map[pairState]bool{}
	var queue []pairState
	forward := map[pairState][]pairState{}

	visit := func(p pairState) {
		if !seen[p] {
			seen[p] = true
			queue = append(queue, p)
		}
	}

	for _, ta := range a.Out(automaton.Pre) {
		for _, tb := range a.Out(automaton.Pre) {
			w := weights.Mul(a.WeightOf(ta), a.WeightOf(tb))
			if weights.IsZero(w) {
				continue
			}
			visit(pairState{a.DstOf(ta), a.DstOf(tb)})
		}
	}

	for i := 0; i < len(queue); i++ {
		p := queue[i]
		for _, ta := range a.Out(p.p) {
			if a.IsEpsilon(ta) || a.DstOf(ta) == automaton.Post {
				continue
			}
			for _, tb := range a.Out(p.q) {
				if a.IsEpsilon(tb) || a.DstOf(tb) == automaton.Post || !a.Ctx.Labels.Equal(a.LabelOf(ta), a.LabelOf(tb)) {
					continue
				}
				w := weights.Mul(a.WeightOf(ta), a.WeightOf(tb))
				if weights.IsZero(w) {
					continue
				}
				next := pairState{a.DstOf(ta), a.DstOf(tb)}
				forward[p] = append(forward[p], next)
				visit(next)
			}
		}
	}

	backward := map[pairState][]pairState{}
	for p, nexts := range forward {
		for _, n := range nexts {
			backward[n] = append(backward[n], p)
		}
	}

	coaccessible := map[pairState]bool{}
	var coQueue []pairState
	markCoaccessible := func(p pairState) bool {
		if p.p != p.q {
			return true
		}
		if !coaccessible[p] {
			coaccessible[p] = true
			coQueue = append(coQueue, p)
		}
		return false
	}

	for p := range seen {
		if !weights.IsZero(a.FinalWeight(p.p)) && !weights.IsZero(a.FinalWeight(p.q)) {
			if markCoaccessible(p) {
				return true
			}
		}
	}
	for i := 0; i < len(coQueue); i++ {
		p := coQueue[i]
		for _, pred := range backward[p] {
			if markCoaccessible(pred) {
				return true
			}
		}
	}
	return false
}
