package algo

import (
	"awali.dev/awali/automaton"
	"awali.dev/awali/weightset"
)

// Direction selects which way Proper propagates epsilon weights.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// IsProper reports whether a has no epsilon transitions (mid-automaton
// moves flagged isEpsilon; Pre/Post initial/final edges are not epsilon
// transitions in this model and do not count).
func IsProper[L, W any](a *automaton.Automaton[L, W]) bool {
	for _, q := range a.States() {
		for _, tid := range a.Out(q) {
			if a.IsEpsilon(tid) {
				return false
			}
		}
	}
	return true
}

// Proper removes every epsilon transition, distributing its weight over
// the paths it shortcuts: forward direction pushes an epsilon q--w-->r's
// weight onto every transition leaving r (an epsilon one becomes an
// epsilon transition from q, removed in a later step) and onto r's final
// weight; an epsilon self-loop is removed by multiplying the transitions
// leaving its state by the star of its weight. Backward direction is the
// dual, pushing onto transitions entering q. It operates in place and returns an error if an epsilon cycle's
// weight is not starrable.
func Proper[L, W any](a *automaton.Automaton[L, W], dir Direction) error {
	for {
		progressed, err := properStep(a, dir)
		if err != nil {
			return err
		}
		if !progressed {
			return nil
		}
	}
}

func properStep[L, W any](a *automaton.Automaton[L, W], dir Direction) (bool, error) {
	weights := a.Ctx.Weights
	for _, q := range a.States() {
		for _, tid := range a.Out(q) {
			if !a.IsEpsilon(tid) {
				continue
			}
			r := a.DstOf(tid)
			w := a.WeightOf(tid)

			if r == q {
				star, err := weights.Star(w)
				if err != nil {
					return false, err
				}
				a.DelTransition(tid)
				rescale(a, q, star, dir, weights)
				return true, nil
			}

			if dir == Forward {
				for _, rt := range a.Out(r) {
					dst := a.DstOf(rt)
					if dst == automaton.Post || (a.IsEpsilon(rt) && (dst == q || dst == r)) {
						continue // r's final weight is pushed below; epsilons from r back to q or to r itself are not propagated
					}
					rw := weights.Mul(w, a.WeightOf(rt))
					if a.IsEpsilon(rt) {
						for _, qt := range a.Out(q) {
							if qt != tid && a.IsEpsilon(qt) && a.DstOf(qt) == dst {
								rw = weights.Add(a.WeightOf(qt), rw)
								a.DelTransition(qt)
							}
						}
						a.NewEpsilonTransition(q, dst, rw)
						continue
					}
					a.AddTransition(q, dst, a.LabelOf(rt), rw)
				}
				if a.IsFinal(r) {
					a.AddFinal(q, weights.Mul(w, a.FinalWeight(r)))
				}
			} else {
				for _, qt := range a.In(q) {
					src := a.SrcOf(qt)
					if src == automaton.Pre || (a.IsEpsilon(qt) && (src == r || src == q)) {
						continue // q's initial weight is pushed below; epsilons into q from r or from q itself are not propagated
					}
					qw := weights.Mul(a.WeightOf(qt), w)
					if a.IsEpsilon(qt) {
						for _, rt := range a.In(r) {
							if rt != tid && a.IsEpsilon(rt) && a.SrcOf(rt) == src {
								qw = weights.Add(a.WeightOf(rt), qw)
								a.DelTransition(rt)
							}
						}
						a.NewEpsilonTransition(src, r, qw)
						continue
					}
					a.AddTransition(src, r, a.LabelOf(qt), qw)
				}
				if a.IsInitial(q) {
					a.AddInitial(r, weights.Mul(a.InitialWeight(q), w))
				}
			}
			a.DelTransition(tid)
			return true, nil
		}
	}
	return false, nil
}

// rescale multiplies every transition leaving (Forward) or entering
// (Backward) q by star, the closure of a self-loop epsilon weight just
// removed; q's final (initial) weight is scaled with them, being its
// q->Post (Pre->q) transition.
func rescale[L, W any](a *automaton.Automaton[L, W], q automaton.StateID, star W, dir Direction, weights weightset.Semiring[W]) {
	if dir == Forward {
		for _, tid := range append([]automaton.TransID{}, a.Out(q)...) {
			dst := a.DstOf(tid)
			w := weights.Mul(star, a.WeightOf(tid))
			if a.IsEpsilon(tid) {
				a.DelTransition(tid)
				a.NewEpsilonTransition(q, dst, w)
			} else {
				a.SetTransition(q, dst, a.LabelOf(tid), w)
			}
		}
	} else {
		for _, tid := range append([]automaton.TransID{}, a.In(q)...) {
			src := a.SrcOf(tid)
			w := weights.Mul(a.WeightOf(tid), star)
			if a.IsEpsilon(tid) {
				a.DelTransition(tid)
				a.NewEpsilonTransition(src, q, w)
			} else {
				a.SetTransition(src, q, a.LabelOf(tid), w)
			}
		}
	}
}
