package wfst

import "testing"

func TestNewCrossChain_WeightOnFirstArc(t *testing.T) {
	chain := NewCrossChain([]Label{1, 2}, []Label{9}, Weight(3.0))
	if chain.Start() != 0 {
		t.Fatalf("Start() = %d, want 0", chain.Start())
	}
	arcs := chain.Arcs(0)
	if len(arcs) != 1 || arcs[0].Weight != Weight(3.0) || arcs[0].ILabel != Label(1) || arcs[0].OLabel != Epsilon {
		t.Fatalf("unexpected first arc: %+v", arcs)
	}
	// 2 lower labels + 1 upper label = 3 states beyond the start.
	if chain.NumStates() != 4 {
		t.Fatalf("NumStates() = %d, want 4", chain.NumStates())
	}
}

func TestNewCrossChain_EmptyLowerPutsWeightOnUpperArc(t *testing.T) {
	chain := NewCrossChain(nil, []Label{9}, Weight(1.5))
	arcs := chain.Arcs(0)
	if len(arcs) != 1 || arcs[0].Weight != Weight(1.5) || arcs[0].OLabel != Label(9) {
		t.Fatalf("unexpected arc when lower is empty: %+v", arcs)
	}
}

func TestNewCrossChain_BothEmptyIsSingleState(t *testing.T) {
	chain := NewCrossChain(nil, nil, Weight(0))
	if chain.NumStates() != 1 {
		t.Fatalf("NumStates() = %d, want 1 for an all-epsilon rule", chain.NumStates())
	}
}
