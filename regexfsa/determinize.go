package regexfsa

import (
	"sort"

	"github.com/dmort27/morphotactics/wfst"
)

// determinize runs subset construction over an unweighted acceptor
// (ilabel == olabel on every arc, no epsilon arcs — call RemoveEpsilon
// first). Unlike the master WFST's conditional optimize, the regex
// acceptor always carries trivial weights (One, i.e. 0), so determinizing never
// discards meaningful alternative-path weight information; spec.md §4.1
// requires this acceptor to always be optimized.
func determinize(nfa *wfst.Automaton) *wfst.Automaton {
	type subset struct {
		members []wfst.StateID
		key     string
	}

	keyOf := func(members []wfst.StateID) string {
		sorted := append([]wfst.StateID(nil), members...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		key := make([]byte, 0, len(sorted)*5)
		for _, s := range sorted {
			key = append(key, byte(s), byte(s>>8), byte(s>>16), byte(s>>24), ',')
		}
		return string(key)
	}

	start := []wfst.StateID{nfa.Start()}
	startKey := keyOf(start)

	out := wfst.New()
	dfaIDs := map[string]wfst.StateID{}
	pending := []subset{{members: start, key: startKey}}
	dfaIDs[startKey] = out.AddState()
	out.SetStart(dfaIDs[startKey])

	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]
		dfaState := dfaIDs[cur.key]

		finalWeight := wfst.Zero
		byLabel := map[wfst.Label][]wfst.StateID{}
		for _, m := range cur.members {
			if nfa.IsAccepting(m) {
				finalWeight = wfst.Plus(finalWeight, nfa.Final(m))
			}
			for _, arc := range nfa.Arcs(m) {
				byLabel[arc.ILabel] = append(byLabel[arc.ILabel], arc.Dst)
			}
		}
		if !finalWeight.IsZero() {
			out.SetFinal(dfaState, finalWeight)
		}

		labels := make([]wfst.Label, 0, len(byLabel))
		for lbl := range byLabel {
			labels = append(labels, lbl)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

		for _, lbl := range labels {
			targets := dedupeStates(byLabel[lbl])
			key := keyOf(targets)
			dst, ok := dfaIDs[key]
			if !ok {
				dst = out.AddState()
				dfaIDs[key] = dst
				pending = append(pending, subset{members: targets, key: key})
			}
			out.AddArc(dfaState, lbl, lbl, wfst.One, dst)
		}
	}
	return out
}

func dedupeStates(states []wfst.StateID) []wfst.StateID {
	seen := make(map[wfst.StateID]bool, len(states))
	out := make([]wfst.StateID, 0, len(states))
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
