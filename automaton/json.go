package automaton

import (
	"awali.dev/awali/jsonfmt"
)

// EncodeJSON serializes the automaton to the engine's automaton document
// shape: a "context" name, a "states" array, and a "transitions" array of
// {source, destination, label, weight}. Pre/Post are encoded implicitly
// via initial/final weight fields on each state rather than as ordinary
// states.
func (a *Automaton[L, W]) EncodeJSON() *jsonfmt.Node {
	statesArr := jsonfmt.NewArray()
	for _, q := range a.States() {
		if q == Pre || q == Post {
			continue
		}
		members := []jsonfmt.Member{
			{Key: "id", Value: jsonfmt.NewString(a.StateName(q))},
		}
		if a.IsInitial(q) {
			members = append(members, jsonfmt.Member{Key: "initial", Value: a.Ctx.Weights.EncodeJSON(a.InitialWeight(q))})
		}
		if a.IsFinal(q) {
			members = append(members, jsonfmt.Member{Key: "final", Value: a.Ctx.Weights.EncodeJSON(a.FinalWeight(q))})
		}
		statesArr.Elems = append(statesArr.Elems, jsonfmt.NewObject(members...))
	}

	transArr := jsonfmt.NewArray()
	for _, t := range a.trans {
		if t.deleted || t.src == Pre || t.dst == Post {
			continue
		}
		members := []jsonfmt.Member{
			{Key: "source", Value: jsonfmt.NewString(a.StateName(t.src))},
			{Key: "destination", Value: jsonfmt.NewString(a.StateName(t.dst))},
			{Key: "weight", Value: a.Ctx.Weights.EncodeJSON(t.weight)},
		}
		if !t.isOne {
			members = append(members, jsonfmt.Member{Key: "label", Value: a.Ctx.Labels.EncodeJSON(t.label)})
		}
		transArr.Elems = append(transArr.Elems, jsonfmt.NewObject(members...))
	}

	return jsonfmt.NewObject(
		jsonfmt.Member{Key: "context", Value: jsonfmt.NewString(a.Ctx.Name())},
		jsonfmt.Member{Key: "states", Value: statesArr},
		jsonfmt.Member{Key: "transitions", Value: transArr},
	)
}

// DecodeInto populates a (freshly built over a.Ctx) from the document
// produced by EncodeJSON. The format package's registry is what resolves
// a JSON document's "context" field to the concrete (L, W) needed to call
// New before this can run.
func DecodeInto[L, W any](a *Automaton[L, W], n *jsonfmt.Node) error {
	ids := make(map[string]StateID)
	ids["pre"] = Pre
	ids["post"] = Post

	statesNode, _ := n.At("states")
	for _, sn := range statesNode.Elems {
		name, _ := sn.Child("id").AsString()
		q := a.AddState(name)
		ids[name] = q
		if init := sn.Child("initial"); init != nil {
			w, err := a.Ctx.Weights.DecodeJSON(init)
			if err != nil {
				return err
			}
			if err := a.SetInitial(q, w); err != nil {
				return err
			}
		}
		if final := sn.Child("final"); final != nil {
			w, err := a.Ctx.Weights.DecodeJSON(final)
			if err != nil {
				return err
			}
			if err := a.SetFinal(q, w); err != nil {
				return err
			}
		}
	}

	transNode, _ := n.At("transitions")
	for _, tn := range transNode.Elems {
		srcName, _ := tn.Child("source").AsString()
		dstName, _ := tn.Child("destination").AsString()
		src, dst := ids[srcName], ids[dstName]
		w, err := a.Ctx.Weights.DecodeJSON(tn.Child("weight"))
		if err != nil {
			return err
		}
		if labelNode := tn.Child("label"); labelNode != nil {
			l, err := a.Ctx.Labels.DecodeJSON(labelNode)
			if err != nil {
				return err
			}
			if _, err := a.NewTransition(src, dst, l, w); err != nil {
				return err
			}
		} else {
			if _, err := a.NewEpsilonTransition(src, dst, w); err != nil {
				return err
			}
		}
	}
	return nil
}
