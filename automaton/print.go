package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// String renders the automaton as a DFS tree from its initial states,
// each line showing a state and the transition that reached it, extra
// (non-tree) transitions shown as back-references by state name, the
// same connector-art spanning-tree walk a dependency graph printer uses.
func (a *Automaton[L, W]) String() string {
	var b strings.Builder

	seen := make(map[StateID]bool)
	var walk func(q StateID, prefix1, prefix2 string)
	walk = func(q StateID, prefix1, prefix2 string) {
		if seen[q] {
			fmt.Fprintf(&b, "%s%s (seen)\n", prefix1, a.StateName(q))
			return
		}
		seen[q] = true
		marks := ""
		if q != Pre && q != Post {
			if a.IsInitial(q) {
				marks += " [initial:" + a.Ctx.Weights.Print(a.InitialWeight(q)) + "]"
			}
			if a.IsFinal(q) {
				marks += " [final:" + a.Ctx.Weights.Print(a.FinalWeight(q)) + "]"
			}
		}
		fmt.Fprintf(&b, "%s%s%s\n", prefix1, a.StateName(q), marks)

		var kids []TransID
		for _, tid := range a.states[q].out {
			t := a.trans[tid]
			if t.deleted || t.dst == Post || t.dst == Pre {
				continue
			}
			kids = append(kids, tid)
		}
		sort.Slice(kids, func(i, j int) bool { return int(a.trans[kids[i]].dst) < int(a.trans[kids[j]].dst) })

		for i, tid := range kids {
			t := a.trans[tid]
			label := "\\e"
			if !t.isOne {
				label = a.Ctx.Labels.Print(t.label)
			}
			p1, p2 := "├─ ", "│  "
			if i == len(kids)-1 {
				p1, p2 = "└─ ", "   "
			}
			fmt.Fprintf(&b, "%s%s:%s --> ", prefix2+p1, label, a.Ctx.Weights.Print(t.weight))
			walk(t.dst, "", prefix2+p2)
		}
	}

	var roots []StateID
	for _, q := range a.States() {
		if q != Pre && q != Post && a.IsInitial(q) {
			roots = append(roots, q)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	for _, r := range roots {
		walk(r, "", "")
	}
	for _, q := range a.States() {
		if q != Pre && q != Post && !seen[q] {
			fmt.Fprintf(&b, "ORPHAN: %s\n", a.StateName(q))
		}
	}
	return b.String()
}
