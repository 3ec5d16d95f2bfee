package wfst

// IsInputDeterministic reports whether every state has at most one
// outgoing arc per distinct input label (epsilon included — a state with
// two epsilon arcs is a nondeterministic choice point).
func (a *Automaton) IsInputDeterministic() bool {
	for i := range a.states {
		seen := make(map[Label]bool, len(a.states[i].arcs))
		for _, arc := range a.states[i].arcs {
			if seen[arc.ILabel] {
				return false
			}
			seen[arc.ILabel] = true
		}
	}
	return true
}

// IsOutputDeterministic reports whether every state has at most one
// outgoing arc per distinct output label.
func (a *Automaton) IsOutputDeterministic() bool {
	for i := range a.states {
		seen := make(map[Label]bool, len(a.states[i].arcs))
		for _, arc := range a.states[i].arcs {
			if seen[arc.OLabel] {
				return false
			}
			seen[arc.OLabel] = true
		}
	}
	return true
}
