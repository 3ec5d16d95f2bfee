package wfst

import "math"

// Verify checks the structural invariants required before an Automaton is
// returned to a caller: a start state is set, every arc targets a state
// that exists, and every weight (arc and final) is a valid tropical
// semiring value (not NaN; +Inf is the valid semiring zero).
func (a *Automaton) Verify() error {
	if a.start == InvalidState {
		return &VerifyError{State: InvalidState, Err: ErrNoStart}
	}
	for i := range a.states {
		v := StateID(i)
		if w := a.states[i].final; math.IsNaN(float64(w)) {
			return &VerifyError{State: v, Err: ErrInvalidWeight}
		}
		for _, arc := range a.states[i].arcs {
			if arc.Dst < 0 || int(arc.Dst) >= len(a.states) {
				return &VerifyError{State: v, Err: ErrDanglingArc}
			}
			if math.IsNaN(float64(arc.Weight)) {
				return &VerifyError{State: v, Err: ErrInvalidWeight}
			}
		}
	}
	return nil
}
