package weightset

import "awali.dev/awali/awerr"

// Join is the promotion lattice used when two automata over different
// weightsets are combined (product, sum, composition): it picks the common
// weightset both operands can be embedded into, or reports that none
// exists. It operates on registry names rather than on the Go types
// directly, since Go generics are resolved at compile time and cannot
// select a result type dynamically.
//
// The lattice, from least to most general:
//
//	B  <  F2 <  Z  <  Q  <  R  <  C
//	B  <  N  <  Z
//
// Z/nZ, N-bounded, the tropical semirings, R-max-prod and Fuzzy sit outside
// this chain: they only join with themselves or with B.
func Join(a, b string) (string, error) {
	if a == b {
		return a, nil
	}
	if a == "B" {
		return b, nil
	}
	if b == "B" {
		return a, nil
	}
	rank := map[string]int{"N": 1, "F2": 1, "Z": 2, "Q": 3, "R": 4, "C": 5}
	ra, oka := rank[a]
	rb, okb := rank[b]
	if oka && okb {
		if ra >= rb {
			return a, nil
		}
		return b, nil
	}
	return "", awerr.Domain("no common weightset for join(" + a + ", " + b + ")")
}
