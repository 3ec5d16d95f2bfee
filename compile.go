package morphotactics

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"github.com/dmort27/morphotactics/internal/symtab"
	"github.com/dmort27/morphotactics/wfst"
)

func tracer() tracing.Trace {
	return tracing.Select("morphotactics.compiler")
}

const startVertexName = "start"

// Compile takes a set of slot definitions — possibly with cyclic
// continuation dependencies, weighted transitions, non-deterministic
// alternatives, and stem-guessing regex acceptors — and produces a single
// well-formed WFST over the tropical semiring whose language is exactly the
// set of legal morpheme sequences the slots describe.
//
// Compile raises ErrNoStartingSlot if no slot is marked start,
// ErrDuplicateSlotName if two slots share a name, ErrReservedSlotName if a
// slot is named "start", and ErrDanglingContinuation if a reachable rule's
// continuation names a slot absent from slots.
func Compile(slots []Slot) (*wfst.Automaton, error) {
	t, _, err := compileInternal(slots)
	return t, err
}

// compileInternal is Compile plus the shared interning table, which tests
// need in order to drive the compiled transducer with concrete symbols;
// production callers have no use for raw label integers, so Compile hides it.
func compileInternal(slots []Slot) (*wfst.Automaton, *symtab.Table, error) {
	byName := make(map[string]Slot, len(slots))
	var startNames []string
	for _, s := range slots {
		if s.name == startVertexName {
			return nil, nil, &CompileError{Slot: s.name, Err: ErrReservedSlotName}
		}
		if _, dup := byName[s.name]; dup {
			return nil, nil, &CompileError{Slot: s.name, Err: ErrDuplicateSlotName}
		}
		byName[s.name] = s
		if s.start {
			startNames = append(startNames, s.name)
		}
	}
	if len(startNames) == 0 {
		return nil, nil, &CompileError{Err: ErrNoStartingSlot}
	}

	neighbors := func(name string) []string {
		if name == startVertexName {
			return startNames
		}
		s := byName[name]
		var out []string
		for _, c := range slotContinuations(s) {
			if !c.Target.terminal {
				out = append(out, c.Target.name)
			}
		}
		return out
	}

	if err := validateContinuations(byName, neighbors, startNames); err != nil {
		return nil, nil, err
	}

	syms := symtab.New()
	c := &compiler{byName: byName, startNames: startNames, syms: syms, master: wfst.New(), entry: map[string]wfst.StateID{}, finals: newFinalsTable()}

	pass1 := newDFS(neighbors, c.materialize)
	pass1.walk(startVertexName)
	tracer().Debugf("pass 1: materialized %d slot(s)", len(byName))

	pass2 := newDFS(neighbors, c.wire)
	pass2.walk(startVertexName)
	tracer().Debugf("pass 2: wired continuations for %d slot(s)", len(byName))

	if err := c.master.Verify(); err != nil {
		return nil, nil, &CompileError{Err: &wrappedError{ErrMalformedFST, err}}
	}
	c.master.RemoveEpsilon()
	if c.master.IsInputDeterministic() && c.master.IsOutputDeterministic() {
		tracer().Debugf("master is already input- and output-deterministic, optimizing")
		c.master.Optimize()
	} else {
		tracer().Debugf("master is non-deterministic, skipping optimize")
	}
	return c.master, syms, nil
}

// wrappedError pairs a sentinel with the concrete cause, so both
// errors.Is(err, ErrMalformedFST) and inspection of the cause work.
type wrappedError struct {
	sentinel error
	cause    error
}

func (e *wrappedError) Error() string { return e.sentinel.Error() + ": " + e.cause.Error() }
func (e *wrappedError) Unwrap() error { return e.sentinel }

// slotContinuations returns the continuation list governing s, whichever
// variant s is.
func slotContinuations(s Slot) []Continuation {
	if s.isGuesser() {
		return s.guesserConts
	}
	var all []Continuation
	for _, r := range s.rules {
		all = append(all, r.Continuations...)
	}
	return all
}

func validateContinuations(byName map[string]Slot, neighbors func(string) []string, startNames []string) error {
	reachable := map[string]bool{}
	walker := newDFS(neighbors, func(name string) {
		if name != startVertexName {
			reachable[name] = true
		}
	})
	walker.walk(startVertexName)

	for name := range reachable {
		s := byName[name]
		for _, c := range slotContinuations(s) {
			if c.Target.terminal {
				continue
			}
			if _, ok := byName[c.Target.name]; !ok {
				return &CompileError{Slot: name, Err: ErrDanglingContinuation}
			}
		}
	}
	return nil
}

// compiler holds the mutable state threaded between pass 1 and pass 2.
// slot.final_states is modeled here as a side table (finals) owned by the
// compiler rather than a mutable field on the public Slot type.
type compiler struct {
	byName     map[string]Slot
	startNames []string
	syms       *symtab.Table
	master     *wfst.Automaton

	entry  map[string]wfst.StateID // slot name -> entry vertex in master
	finals *finalsTable            // slot name -> final vertices, in rule order
}

// finalsTable is each slot's final_states scratch table, one arraylist per
// slot, keyed by slot name and filled once during pass 1.
type finalsTable struct {
	byName map[string]*arraylist.List
}

func newFinalsTable() *finalsTable {
	return &finalsTable{byName: map[string]*arraylist.List{}}
}

func (f *finalsTable) set(name string, states []wfst.StateID) {
	list := arraylist.New()
	for _, s := range states {
		list.Add(s)
	}
	f.byName[name] = list
}

func (f *finalsTable) all(name string) []wfst.StateID {
	list, ok := f.byName[name]
	if !ok {
		return nil
	}
	values := list.Values()
	out := make([]wfst.StateID, len(values))
	for i, v := range values {
		out[i] = v.(wfst.StateID)
	}
	return out
}

func (f *finalsTable) at(name string, i int) wfst.StateID {
	v, _ := f.byName[name].Get(i)
	return v.(wfst.StateID)
}

// materialize is pass 1's visit_fn: allocate each reachable slot's entry
// vertex and copy its rule mini-transducers (or its guesser acceptor) into
// the master automaton. It never dereferences another slot's state, so
// cycles in the continuation graph cannot corrupt the copy.
func (c *compiler) materialize(name string) {
	if name == startVertexName {
		v := c.master.AddState()
		c.master.SetStart(v)
		c.entry[startVertexName] = v
		return
	}

	s := c.byName[name]
	entry := c.master.AddState()
	c.entry[name] = entry
	tracer().Debugf("materialized slot %q at state %d", name, entry)

	if s.isGuesser() {
		c.materializeGuesser(name, s, entry)
		return
	}

	finals := make([]wfst.StateID, 0, len(s.rules))
	for _, r := range s.rules {
		lower := internLabels(c.syms, r.Lower)
		upper := internLabels(c.syms, r.Upper)
		chain := wfst.NewCrossChain(lower, upper, r.Weight)
		translation := c.master.CopyIn(chain, entry)
		finals = append(finals, translation[lastState(chain)])
	}
	c.finals.set(name, finals)
}

// materializeGuesser splices a compiled regex acceptor into the master
// automaton as an identity transduction: the stem passes through unchanged
// on both tapes. Arc labels are re-interned from the guesser's private
// symbol table into the compiler's shared one before the copy, so labels
// line up with the rest of the lexicon.
func (c *compiler) materializeGuesser(name string, s Slot, entry wfst.StateID) {
	relabeled := relabelAcceptor(s.guesser, s.guesserSyms, c.syms)
	translation := c.master.CopyIn(relabeled, entry)

	var finals []wfst.StateID
	for _, v := range relabeled.States() {
		if relabeled.IsAccepting(v) {
			finals = append(finals, translation[v])
		}
	}
	c.finals.set(name, finals)
}

// relabelAcceptor returns a copy of a with every arc's label re-interned
// from the from table into the to table, preserving a's state numbering
// exactly so the result can still be spliced with CopyIn.
func relabelAcceptor(a *wfst.Automaton, from, to *symtab.Table) *wfst.Automaton {
	out := wfst.New()
	out.AddStates(a.NumStates())
	out.SetStart(a.Start())
	for _, v := range a.States() {
		if a.IsAccepting(v) {
			out.SetFinal(v, a.Final(v))
		}
		for _, arc := range a.Arcs(v) {
			lbl := wfst.Label(to.Intern(from.Symbol(int32(arc.ILabel))))
			out.AddArc(v, lbl, lbl, arc.Weight, arc.Dst)
		}
	}
	return out
}

// wire is pass 2's visit_fn: for each rule's final vertex (or, for a
// guesser, every accepting vertex it produced), apply that rule's
// continuations — an epsilon arc to the target slot's entry vertex, or a
// final-weight update for Terminal.
func (c *compiler) wire(name string) {
	if name == startVertexName {
		for _, s := range c.startNames {
			c.master.AddArc(c.entry[startVertexName], wfst.Epsilon, wfst.Epsilon, wfst.One, c.entry[s])
		}
		return
	}

	s := c.byName[name]
	if s.isGuesser() {
		for _, v := range c.finals.all(name) {
			c.applyContinuations(v, s.guesserConts)
		}
		return
	}
	for i, r := range s.rules {
		c.applyContinuations(c.finals.at(name, i), r.Continuations)
	}
}

func (c *compiler) applyContinuations(finalState wfst.StateID, conts []Continuation) {
	for _, cont := range conts {
		if cont.Target.terminal {
			c.master.SetFinal(finalState, cont.Weight)
			continue
		}
		c.master.AddArc(finalState, wfst.Epsilon, wfst.Epsilon, cont.Weight, c.entry[cont.Target.name])
	}
}

func internLabels(syms *symtab.Table, tokens []string) []wfst.Label {
	labels := make([]wfst.Label, len(tokens))
	for i, t := range tokens {
		labels[i] = wfst.Label(syms.Intern(t))
	}
	return labels
}

func lastState(a *wfst.Automaton) wfst.StateID {
	return wfst.StateID(a.NumStates() - 1)
}
