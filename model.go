// Package morphotactics compiles a declarative description of a language's
// morphotactics — the inventory of morpheme slots, the surface/underlying
// symbol pairs each slot admits, and the legal continuations between slots —
// into a single weighted finite-state transducer over the tropical semiring.
//
// Basic usage:
//
//	c1, err := morphotactics.NewSlot("c1", []morphotactics.Rule{
//		{Upper: []string{"a"}, Lower: []string{"b"}, Continuations: []morphotactics.Continuation{
//			{Target: morphotactics.Terminal, Weight: 0},
//		}},
//	}, morphotactics.WithStart())
//
//	t, err := morphotactics.Compile([]morphotactics.Slot{c1})
package morphotactics

import (
	"github.com/dmort27/morphotactics/internal/symtab"
	"github.com/dmort27/morphotactics/regexfsa"
	"github.com/dmort27/morphotactics/wfst"
)

// Target names the destination of a Continuation: either another slot's
// name or the Terminal sentinel.
type Target struct {
	name     string
	terminal bool
}

// To names a continuation target by slot name.
func To(name string) Target {
	return Target{name: name}
}

// Terminal is the sentinel continuation target meaning "this rule's
// destination is an accepting state", rather than another slot.
var Terminal = Target{terminal: true}

// Continuation is one (target, weight) pair in a Rule's continuation list.
// The weight is the cost of entering that continuation.
type Continuation struct {
	Target Target
	Weight wfst.Weight
}

// Rule is a single upper/lower/continuations/weight quadruple inside a
// Slot. Upper and Lower are ordered symbol sequences; symbols may be
// multi-character tokens ("kw", "tsin") and are never split into runes.
type Rule struct {
	Upper         []string
	Lower         []string
	Continuations []Continuation
	Weight        wfst.Weight
}

// Slot is a named group of rules sharing a continuation role, or (when
// built via NewStemGuesser) a regex acceptor standing in for a rule list.
// The two cases are a tagged union, not a type hierarchy: exactly one of
// rules or guesser is populated.
type Slot struct {
	name  string
	start bool

	rules []Rule

	guesser      *wfst.Automaton
	guesserSyms  *symtab.Table
	guesserConts []Continuation
}

// SlotOption configures a Slot at construction time.
type SlotOption func(*Slot)

// WithStart marks a Slot as a root of the lexicon.
func WithStart() SlotOption {
	return func(s *Slot) { s.start = true }
}

// NewSlot constructs a Slot from an explicit rule list. It returns
// ErrEmptyContinuations if any rule has zero continuations.
func NewSlot(name string, rules []Rule, opts ...SlotOption) (Slot, error) {
	for i, r := range rules {
		if len(r.Continuations) == 0 {
			return Slot{}, &ConstructionError{Slot: name, Rule: i, Err: ErrEmptyContinuations}
		}
	}
	s := Slot{name: name, rules: rules}
	for _, opt := range opts {
		opt(&s)
	}
	return s, nil
}

// NewStemGuesser constructs a Slot whose body is a regex acceptor compiled
// eagerly from minWordConstraint over alphabet. Continuations apply
// uniformly to every accepting state the acceptor produces. alphabet may
// be nil if the pattern contains no sigma ('.').
func NewStemGuesser(minWordConstraint, name string, continuations []Continuation, alphabet regexfsa.Alphabet, opts ...SlotOption) (Slot, error) {
	if len(continuations) == 0 {
		return Slot{}, &ConstructionError{Slot: name, Rule: -1, Err: ErrEmptyContinuations}
	}
	syms := symtab.New()
	acc, err := regexfsa.Compile(minWordConstraint, alphabet, syms)
	if err != nil {
		return Slot{}, &ConstructionError{Slot: name, Rule: -1, Err: err}
	}
	s := Slot{name: name, guesser: acc, guesserSyms: syms, guesserConts: continuations}
	for _, opt := range opts {
		opt(&s)
	}
	return s, nil
}

// Name returns the slot's identifier.
func (s Slot) Name() string { return s.name }

// isGuesser reports whether s carries a compiled acceptor rather than a rule list.
func (s Slot) isGuesser() bool { return s.guesser != nil }
