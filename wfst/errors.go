package wfst

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by structural operations on an Automaton.
var (
	// ErrNoStart indicates verify found no start state set.
	ErrNoStart = errors.New("wfst: no start state set")

	// ErrDanglingArc indicates an arc targets a state outside the automaton.
	ErrDanglingArc = errors.New("wfst: arc targets a nonexistent state")

	// ErrInvalidWeight indicates a weight is not a valid tropical semiring value (e.g. NaN).
	ErrInvalidWeight = errors.New("wfst: invalid weight")
)

// VerifyError wraps a structural verification failure with the offending state.
type VerifyError struct {
	State StateID
	Err   error
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	return fmt.Sprintf("wfst: verify failed at state %d: %v", e.State, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *VerifyError) Unwrap() error {
	return e.Err
}
