package wfst

// CopyIn splices sub into a, re-homing sub's vertex 0 onto entry (which
// must already exist in a) and allocating a fresh contiguous block of
// vertices for every other state of sub. Every arc of sub is re-emitted
// against the translated endpoints.
//
// This is the systems-language analogue of the source's delayed splice: a
// per-rule mini-transducer or a StemGuesser's acceptor is built in
// isolation, then copied arc-by-arc into the shared master automaton so
// that cyclic continuation references never need to dereference an
// under-construction automaton.
//
// The returned slice maps sub's state i to its destination in a
// (translation[0] == entry).
func (a *Automaton) CopyIn(sub *Automaton, entry StateID) []StateID {
	a.mustExist(entry)
	n := sub.NumStates()
	translation := make([]StateID, n)
	if n == 0 {
		return translation
	}
	translation[0] = entry
	if n > 1 {
		base := a.AddStates(n - 1)
		for i := 1; i < n; i++ {
			translation[i] = base + StateID(i-1)
		}
	}

	for i := 0; i < n; i++ {
		src := translation[i]
		for _, arc := range sub.states[i].arcs {
			a.AddArc(src, arc.ILabel, arc.OLabel, arc.Weight, translation[arc.Dst])
		}
	}
	return translation
}
