package morphotactics

import (
	"errors"
	"fmt"
)

// Sentinel errors for the compiler's error taxonomy (see error handling design).
var (
	// ErrEmptyContinuations indicates a rule (or StemGuesser) was constructed
	// with zero continuations.
	ErrEmptyContinuations = errors.New("morphotactics: rule has no continuations")

	// ErrNoStartingSlot indicates Compile was called with no slot marked start.
	ErrNoStartingSlot = errors.New("morphotactics: no slot marked as start")

	// ErrReservedSlotName indicates a user slot is named "start", the
	// reserved name for the virtual root.
	ErrReservedSlotName = errors.New(`morphotactics: "start" is reserved and cannot name a user slot`)

	// ErrDuplicateSlotName indicates two slots share the same name.
	ErrDuplicateSlotName = errors.New("morphotactics: duplicate slot name")

	// ErrDanglingContinuation indicates a rule's continuation names a slot
	// absent from the compiled set. The source silently drops these; this
	// implementation raises instead (see design notes).
	ErrDanglingContinuation = errors.New("morphotactics: continuation references an unknown slot")

	// ErrMalformedFST indicates the master automaton failed structural
	// verification after construction — a bug in the compiler or in the
	// caller's slot data.
	ErrMalformedFST = errors.New("morphotactics: compiled automaton failed verification")
)

// ConstructionError wraps a failure raised while building a Slot or
// StemGuesser, before any call to Compile.
type ConstructionError struct {
	Slot string
	Rule int // -1 when the error isn't attributable to a specific rule
	Err  error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if e.Rule >= 0 {
		return fmt.Sprintf("morphotactics: slot %q, rule %d: %v", e.Slot, e.Rule, e.Err)
	}
	return fmt.Sprintf("morphotactics: slot %q: %v", e.Slot, e.Err)
}

// Unwrap returns the underlying sentinel or wrapped error.
func (e *ConstructionError) Unwrap() error { return e.Err }

// CompileError wraps a failure raised by Compile, naming the offending slot
// when the error is attributable to one.
type CompileError struct {
	Slot string
	Err  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("morphotactics: compile: slot %q: %v", e.Slot, e.Err)
	}
	return fmt.Sprintf("morphotactics: compile: %v", e.Err)
}

// Unwrap returns the underlying sentinel or wrapped error.
func (e *CompileError) Unwrap() error { return e.Err }
