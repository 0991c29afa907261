/*
Package algo implements the automaton and expression algorithms:
accessibility/trim, strongly-connected-component analysis,
standardisation, three Thompson constructions, derived-term construction,
state elimination, epsilon-removal ("proper"), determinization (plain and
bounded), partition-refinement minimization, product-family operations,
transducer composition, identical-signature state reduction, enumeration
and evaluation.

access.go and determinize.go share one worklist shape: a frontier of
not-yet-processed states, popped and expanded one at a time, newly
discovered states appended to the end (scc.go's Tarjan search recurses).
*/
package algo

// Options configures the algorithms that have more than one reasonable
// policy, analogous to the engine's command-line flags (-M for
// minimization algorithm, bounded-determinization limits, and so on).
type Options struct {
	// ExploreByLength bounds determinize to subsets reachable within this
	// many letters; zero means unbounded.
	ExploreByLength int
	// ExploreWithBound stops determinize from expanding further states
	// once more than this many have been produced; states discovered by
	// the expansions already made are kept, so the result can hold more.
	// Zero means unbounded.
	ExploreWithBound int
	// Thompson selects which of the three Thompson variants ThompsonFrom
	// uses: "canonical", "compact" or "weighted" ("weighted" checks that
	// the expression's constant term is starrable and then builds the same
	// fragments as "canonical"; it does not avoid epsilon loops).
	Thompson string
}

// DefaultOptions mirrors the engine's defaults: unbounded determinization,
// the canonical Thompson construction.
func DefaultOptions() Options { return Options{Thompson: "canonical"} }
