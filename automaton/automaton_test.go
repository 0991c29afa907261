package automaton

import (
	"math/big"
	"testing"

	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/weightset"
)

func newBoolAutomaton(t *testing.T) *Automaton[rune, bool] {
	t.Helper()
	labels := label.NewLetterSet([]rune("ab"))
	c, err := ctx.New[rune, bool](labels, weightset.BSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	return New(c)
}

func newZAutomaton(t *testing.T) *Automaton[rune, *big.Int] {
	t.Helper()
	labels := label.NewLetterSet([]rune("a"))
	c, err := ctx.New[rune, *big.Int](labels, weightset.ZSemiring{})
	if err != nil {
		t.Fatalf("ctx.New: %v", err)
	}
	return New(c)
}

func TestNewHasOnlyPreAndPost(t *testing.T) {
	a := newBoolAutomaton(t)
	if a.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", a.NumStates())
	}
	if a.NumTransitions() != 0 {
		t.Fatalf("NumTransitions() = %d, want 0", a.NumTransitions())
	}
}

func TestAddStateAndTransition(t *testing.T) {
	a := newBoolAutomaton(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	if _, err := a.NewTransition(q0, q1, 'a', true); err != nil {
		t.Fatalf("NewTransition: %v", err)
	}
	if a.NumTransitions() != 1 {
		t.Fatalf("NumTransitions() = %d, want 1", a.NumTransitions())
	}
	out := a.Out(q0)
	if len(out) != 1 || a.LabelOf(out[0]) != 'a' || a.DstOf(out[0]) != q1 {
		t.Errorf("Out(q0) = %+v, want single transition to q1 labeled a", out)
	}
}

func TestNewTransitionRejectsDuplicate(t *testing.T) {
	a := newBoolAutomaton(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	if _, err := a.NewTransition(q0, q1, 'a', true); err != nil {
		t.Fatalf("NewTransition: %v", err)
	}
	if _, err := a.NewTransition(q0, q1, 'a', true); err == nil {
		t.Error("expected an error adding a duplicate transition")
	}
}

func TestAddTransitionMergesAndDeletesAtZero(t *testing.T) {
	a := newZAutomaton(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	if _, err := a.AddTransition(q0, q1, 'a', big.NewInt(1)); err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
	if a.NumTransitions() != 1 {
		t.Fatalf("NumTransitions() = %d, want 1", a.NumTransitions())
	}
	if _, err := a.AddTransition(q0, q1, 'a', big.NewInt(-1)); err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
	if a.NumTransitions() != 0 {
		t.Errorf("NumTransitions() = %d, want 0 after summing to zero", a.NumTransitions())
	}
}

func TestInitialFinalWeights(t *testing.T) {
	a := newBoolAutomaton(t)
	q0 := a.AddState("q0")
	if err := a.SetInitial(q0, true); err != nil {
		t.Fatalf("SetInitial: %v", err)
	}
	if err := a.SetFinal(q0, true); err != nil {
		t.Fatalf("SetFinal: %v", err)
	}
	if !a.IsInitial(q0) || !a.IsFinal(q0) {
		t.Error("q0 should be both initial and final")
	}
	if !a.InitialWeight(q0) || !a.FinalWeight(q0) {
		t.Error("initial/final weight should be true")
	}
}

func TestDelStateTombstonesTransitions(t *testing.T) {
	a := newBoolAutomaton(t)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	a.NewTransition(q0, q1, 'a', true)
	if err := a.DelState(q1); err != nil {
		t.Fatalf("DelState: %v", err)
	}
	if a.NumStates() != 3 {
		t.Errorf("NumStates() = %d, want 3 (pre/post + q0)", a.NumStates())
	}
	if len(a.Out(q0)) != 0 {
		t.Error("q0's transition to the deleted q1 should be gone")
	}
}

func TestDelStateRejectsPreAndPost(t *testing.T) {
	a := newBoolAutomaton(t)
	if err := a.DelState(Pre); err == nil {
		t.Error("deleting Pre should fail")
	}
	if err := a.DelState(Post); err == nil {
		t.Error("deleting Post should fail")
	}
}

func TestStateNameDefaultsToID(t *testing.T) {
	a := newBoolAutomaton(t)
	q := a.AddState("")
	if a.StateName(q) == "" {
		t.Error("StateName should default to a non-empty name")
	}
}
