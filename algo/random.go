package algo

import (
	"math/rand"

	"awali.dev/awali/automaton"
	"awali.dev/awali/ctx"
)

// Random builds a random automaton over c's context: numStates states,
// numInitial of them initial and numFinal (uniformly chosen) final, every
// live state wired into a single connected structure reachable from state
// 0. Each expanded state picks a random number of successors (1 plus a
// manually-sampled binomial(numStates-1, density), since math/rand has no
// built-in binomial sampler) and, as long as some state hasn't been
// reached yet, forces one of its successors to be one of them — the same
// worklist/unreached-set trick the generator this is grounded on uses to
// guarantee every state is reachable from state 0 without rejecting and
// retrying whole automata. Each connecting transition draws a letter
// uniformly from alphabet and carries weight one.
func Random[L, W any](c *ctx.Context[L, W], alphabet []L, numStates int, density float64, numInitial, numFinal int, rng *rand.Rand) *automaton.Automaton[L, W] {
	out := automaton.New(c)
	states := make([]automaton.StateID, numStates)
	for i := range states {
		states[i] = out.AddState("")
	}

	for i := 0; i < numInitial && i < numStates; i++ {
		out.AddInitial(states[i], c.Weights.One())
	}
	for _, idx := range rng.Perm(numStates)[:min(numFinal, numStates)] {
		out.SetFinal(states[idx], c.Weights.One())
	}

	unreached := map[int]bool{}
	for i := 1; i < numStates; i++ {
		unreached[i] = true
	}
	worklist := []int{0}

	for len(worklist) > 0 {
		src := worklist[0]
		worklist = worklist[1:]

		nsucc := 1 + binomial(rng, numStates-1, density)
		sawUnreached := false
		for k := 0; k < nsucc; k++ {
			var dst int
			if k == nsucc-1 && !sawUnreached && len(unreached) > 0 {
				dst = popRandomInt(rng, unreached)
				worklist = append(worklist, dst)
			} else {
				dst = rng.Intn(numStates)
				if unreached[dst] {
					delete(unreached, dst)
					worklist = append(worklist, dst)
					sawUnreached = true
				}
			}
			if len(alphabet) == 0 {
				continue
			}
			l := alphabet[rng.Intn(len(alphabet))]
			out.AddTransition(states[src], states[dst], l, c.Weights.One())
		}
	}
	return out
}

// RandomDeterministic builds a complete deterministic automaton: exactly
// one random transition per state per alphabet letter (so every state has
// exactly one successor per letter, by construction), one uniformly
// random initial state and one uniformly random final state.
func RandomDeterministic[L, W any](c *ctx.Context[L, W], alphabet []L, numStates int, rng *rand.Rand) *automaton.Automaton[L, W] {
	out := automaton.New(c)
	states := make([]automaton.StateID, numStates)
	for i := range states {
		states[i] = out.AddState("")
	}
	for _, src := range states {
		for _, l := range alphabet {
			dst := states[rng.Intn(numStates)]
			out.NewTransition(src, dst, l, c.Weights.One())
		}
	}
	out.AddInitial(states[rng.Intn(numStates)], c.Weights.One())
	out.SetFinal(states[rng.Intn(numStates)], c.Weights.One())
	return out
}

func binomial(rng *rand.Rand, n int, p float64) int {
	count := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			count++
		}
	}
	return count
}

func popRandomInt(rng *rand.Rand, set map[int]bool) int {
	idx := rng.Intn(len(set))
	i := 0
	for k := range set {
		if i == idx {
			delete(set, k)
			return k
		}
		i++
	}
	panic("popRandomInt: empty set")
}
