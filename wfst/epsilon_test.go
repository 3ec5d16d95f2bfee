package wfst

import "testing"

func TestRemoveEpsilon_SimpleChain(t *testing.T) {
	a := New()
	s0 := a.AddState()
	s1 := a.AddState()
	s2 := a.AddState()
	a.SetStart(s0)
	a.AddArc(s0, Label(1), Label(1), Weight(1.0), s1)
	a.AddArc(s1, Epsilon, Epsilon, Weight(2.0), s2)
	a.SetFinal(s2, Weight(0.5))

	a.RemoveEpsilon()

	for _, arc := range a.Arcs(s1) {
		if arc.ILabel == Epsilon && arc.OLabel == Epsilon {
			t.Fatal("epsilon arc survived removal")
		}
	}
	if got := a.Final(s1); got != Weight(2.5) {
		t.Fatalf("Final(s1) after rmepsilon = %v, want 2.5 (2.0 + 0.5)", got)
	}
}

func TestRemoveEpsilon_CycleTerminates(t *testing.T) {
	a := New()
	s0 := a.AddState()
	s1 := a.AddState()
	a.SetStart(s0)
	a.AddArc(s0, Epsilon, Epsilon, One, s1)
	a.AddArc(s1, Epsilon, Epsilon, One, s0) // epsilon cycle, weight 0
	a.AddArc(s1, Label(1), Label(1), One, s1)
	a.SetFinal(s1, One)

	a.RemoveEpsilon()

	if !a.IsAccepting(s0) {
		t.Fatal("s0 should have inherited s1's final weight through the epsilon cycle")
	}
}

func TestRemoveEpsilon_WiresContinuationWeight(t *testing.T) {
	// Mirrors spec.md S7: the rule weight must stay on the rule arc, and the
	// continuation weight must survive epsilon removal by folding into s1's
	// final weight (1.0 + 2.0).
	a := New()
	s0 := a.AddState()
	s1 := a.AddState()
	s2 := a.AddState()
	a.SetStart(s0)
	a.AddArc(s0, Label(10), Label(20), Weight(0.5), s1) // rule arc carrying rule weight
	a.AddArc(s1, Epsilon, Epsilon, Weight(1.0), s2)      // continuation epsilon
	a.SetFinal(s2, Weight(2.0))

	a.RemoveEpsilon()

	arcs := a.Arcs(s0)
	if len(arcs) != 1 {
		t.Fatalf("expected 1 arc from s0, got %d", len(arcs))
	}
	if arcs[0].Weight != Weight(0.5) {
		t.Fatalf("arc weight changed by rmepsilon: got %v, want 0.5", arcs[0].Weight)
	}
	if got := a.Final(s1); got != Weight(3.0) {
		t.Fatalf("Final(s1) = %v, want 3.0 (continuation 1.0 + final 2.0)", got)
	}
	if got := a.Final(s2); got != Weight(2.0) {
		t.Fatalf("Final(s2) = %v, want 2.0", got)
	}
}
