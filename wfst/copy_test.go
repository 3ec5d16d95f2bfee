package wfst

import "testing"

func TestCopyIn_TranslatesVertex0ToEntry(t *testing.T) {
	sub := New()
	s0 := sub.AddState()
	s1 := sub.AddState()
	sub.SetStart(s0)
	sub.AddArc(s0, Label(1), Label(2), Weight(0.25), s1)

	master := New()
	entry := master.AddState()

	before := master.NumStates()
	translation := master.CopyIn(sub, entry)

	if translation[0] != entry {
		t.Fatalf("translation[0] = %d, want entry %d", translation[0], entry)
	}
	if master.NumStates() != before+1 {
		t.Fatalf("master gained %d states, want 1", master.NumStates()-before)
	}
	arcs := master.Arcs(entry)
	if len(arcs) != 1 || arcs[0].Dst != translation[1] || arcs[0].Weight != Weight(0.25) {
		t.Fatalf("unexpected arcs after CopyIn: %+v", arcs)
	}
}

func TestCopyIn_SingleStateSubNoNewStates(t *testing.T) {
	sub := New()
	sub.AddState() // no arcs, nothing to splice
	sub.SetStart(0)

	master := New()
	entry := master.AddState()
	before := master.NumStates()

	translation := master.CopyIn(sub, entry)
	if len(translation) != 1 || translation[0] != entry {
		t.Fatalf("translation = %v, want [entry]", translation)
	}
	if master.NumStates() != before {
		t.Fatalf("CopyIn allocated states for a single-state sub-automaton: %d -> %d", before, master.NumStates())
	}
}
