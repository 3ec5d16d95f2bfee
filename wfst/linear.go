package wfst

// NewCrossChain builds the linear mini-transducer for a single rule: a
// chain that first consumes every label of lower (writing epsilon on the
// output tape), then emits every label of upper (reading epsilon on the
// input tape). This is the general cross-product construction — it works
// regardless of whether lower and upper have the same length, because the
// two tapes are decoupled rather than paired symbol-by-symbol.
//
// weight is attached to the chain's very first arc (whichever tape it
// belongs to), matching rule_weight's role as "the cost of selecting this
// rule from the slot's entry state." The chain has exactly one start state
// (0) and no final states of its own — the caller (the morphotactics
// compiler) decides finality for the copied-in last vertex during its
// continuation-wiring pass.
func NewCrossChain(lower, upper []Label, weight Weight) *Automaton {
	chain := New()
	cur := chain.AddState()
	chain.SetStart(cur)

	first := true
	nextWeight := func() Weight {
		if first {
			first = false
			return weight
		}
		return One
	}

	for _, lbl := range lower {
		next := chain.AddState()
		chain.AddArc(cur, lbl, Epsilon, nextWeight(), next)
		cur = next
	}
	for _, lbl := range upper {
		next := chain.AddState()
		chain.AddArc(cur, Epsilon, lbl, nextWeight(), next)
		cur = next
	}
	return chain
}
