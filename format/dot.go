/*
Package format implements the on-disk representations automata and
rational expressions can be read from and written to: the native JSON
schema (schema.go), a small registry of concrete label/weight
instantiations that JSON's type-erased documents resolve against
(registry.go), two line-oriented plain-text NFA formats (fado.go,
grail.go), and a Graphviz DOT emitter (dot.go).
*/
package format

import (
	"fmt"
	"io"

	"awali.dev/awali/automaton"
)

// WriteDot renders a into the DOT language used by Graphviz, the direct
// generalization of examples/go/dependencies_dot's node/edge print loop
// from an unweighted dependency graph to a weighted, labeled automaton:
// every state becomes a numbered node (final states get a doublecircle
// shape and initial states an arrow from an invisible point, which that
// example never needed, since a dependency graph has no "final" node),
// and every transition an edge labeled with
// its printed label and, when not the weightset's implicit one, its
// weight in angle brackets.
func WriteDot[L, W any](w io.Writer, a *automaton.Automaton[L, W]) error {
	weights := a.Ctx.Weights
	labels := a.Ctx.Labels

	fmt.Fprintf(w, "digraph {\n")
	fmt.Fprintf(w, "  rankdir=LR;\n")
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		shape := "circle"
		if a.IsFinal(q) {
			shape = "doublecircle"
		}
		label := a.StateName(q)
		if a.IsInitial(q) && weights.ShowOne() {
			label += fmt.Sprintf("\\n<%s>", weights.Print(a.InitialWeight(q)))
		}
		fmt.Fprintf(w, "  %d [shape=%s, label=%q];\n", q, shape, label)
		if a.IsInitial(q) {
			fmt.Fprintf(w, "  %d [style=invis, shape=point];\n", -int(q)-1000)
			fmt.Fprintf(w, "  %d -> %d;\n", -int(q)-1000, q)
		}
	}
	for _, q := range a.States() {
		if q == automaton.Pre || q == automaton.Post {
			continue
		}
		for _, tid := range a.Out(q) {
			dst := a.DstOf(tid)
			if dst == automaton.Post {
				continue
			}
			lbl := "\\e"
			if !a.IsEpsilon(tid) {
				lbl = labels.Print(a.LabelOf(tid))
			}
			if weights.ShowOne() && !weights.IsOne(a.WeightOf(tid)) {
				lbl += fmt.Sprintf(" <%s>", weights.Print(a.WeightOf(tid)))
			}
			fmt.Fprintf(w, "  %d -> %d [label=%q];\n", q, dst, lbl)
		}
	}
	fmt.Fprintf(w, "}\n")
	return nil
}
