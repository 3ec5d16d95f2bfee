package wfst

import "testing"

func TestAutomaton_AddStateAndArc(t *testing.T) {
	a := New()
	s0 := a.AddState()
	s1 := a.AddState()
	a.SetStart(s0)
	a.AddArc(s0, Label(1), Label(2), Weight(0.5), s1)
	a.SetFinal(s1, One)

	if a.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", a.NumStates())
	}
	if a.Start() != s0 {
		t.Fatalf("Start() = %d, want %d", a.Start(), s0)
	}
	arcs := a.Arcs(s0)
	if len(arcs) != 1 || arcs[0].Dst != s1 || arcs[0].Weight != Weight(0.5) {
		t.Fatalf("unexpected arcs: %+v", arcs)
	}
	if !a.IsAccepting(s1) {
		t.Fatal("s1 should be accepting")
	}
}

func TestAutomaton_AddStates(t *testing.T) {
	a := New()
	base := a.AddStates(3)
	if a.NumStates() != 3 {
		t.Fatalf("NumStates() = %d, want 3", a.NumStates())
	}
	if base != 0 {
		t.Fatalf("base = %d, want 0", base)
	}
}

func TestAutomaton_SetFinalCombinesByMin(t *testing.T) {
	a := New()
	s0 := a.AddState()
	a.SetFinal(s0, Weight(3.0))
	a.SetFinal(s0, Weight(1.0))
	a.SetFinal(s0, Weight(5.0))

	if got := a.Final(s0); got != Weight(1.0) {
		t.Fatalf("Final(s0) = %v, want 1.0 (tropical min)", got)
	}
}

func TestAutomaton_NonAcceptingByDefault(t *testing.T) {
	a := New()
	s0 := a.AddState()
	if a.IsAccepting(s0) {
		t.Fatal("freshly added state should not be accepting")
	}
	if !a.Final(s0).IsZero() {
		t.Fatal("freshly added state's final weight should be Zero")
	}
}

func TestAutomaton_MultipleArcsBetweenSamePair(t *testing.T) {
	a := New()
	s0 := a.AddState()
	s1 := a.AddState()
	a.AddArc(s0, Label(1), Label(1), One, s1)
	a.AddArc(s0, Label(1), Label(2), Weight(2.0), s1)

	if got := len(a.Arcs(s0)); got != 2 {
		t.Fatalf("len(Arcs(s0)) = %d, want 2", got)
	}
}

func TestAutomaton_MustExistPanicsOnBadState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for arc into a nonexistent state")
		}
	}()
	a := New()
	s0 := a.AddState()
	a.AddArc(s0, Label(1), Label(1), One, StateID(99))
}
