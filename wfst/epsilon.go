package wfst

// RemoveEpsilon replaces every epsilon-only arc chain with direct arcs,
// carrying along the chain's accumulated weight, and folds reachable final
// weights forward the same way. It is the standard ε-closure construction:
// for each state, compute the shortest-weight set of states reachable via
// epsilon arcs alone, then re-home every non-epsilon arc (and final weight)
// of each closure member onto the original state.
//
// Weights are assumed non-negative (the tropical semiring's domain), so a
// Bellman-Ford-style fixpoint bounded by the state count is sufficient —
// there are no negative cycles to chase forever.
func (a *Automaton) RemoveEpsilon() {
	closures := make([]map[StateID]Weight, len(a.states))
	for i := range a.states {
		closures[i] = epsilonClosure(a, StateID(i))
	}

	newArcs := make([][]Arc, len(a.states))
	newFinal := make([]Weight, len(a.states))
	for i := range a.states {
		newFinal[i] = Zero
	}

	for i := range a.states {
		s := StateID(i)
		for t, dist := range closures[i] {
			newFinal[s] = Plus(newFinal[s], Times(dist, a.states[t].final))
			for _, arc := range a.states[t].arcs {
				if arc.ILabel == Epsilon && arc.OLabel == Epsilon {
					continue
				}
				newArcs[s] = append(newArcs[s], Arc{
					ILabel: arc.ILabel,
					OLabel: arc.OLabel,
					Weight: Times(dist, arc.Weight),
					Dst:    arc.Dst,
				})
			}
		}
	}

	for i := range a.states {
		a.states[i].arcs = newArcs[i]
		a.states[i].final = newFinal[i]
	}
}

// epsilonClosure returns, for every state reachable from s via epsilon-only
// arcs (ilabel == olabel == Epsilon), the minimum accumulated weight of
// reaching it. s itself is included with weight One (the identity of the
// tropical product, i.e. 0).
func epsilonClosure(a *Automaton, s StateID) map[StateID]Weight {
	dist := map[StateID]Weight{s: One}
	bound := len(a.states) + 1
	for round := 0; round < bound; round++ {
		changed := false
		for t, dt := range dist {
			for _, arc := range a.states[t].arcs {
				if arc.ILabel != Epsilon || arc.OLabel != Epsilon {
					continue
				}
				nd := Times(dt, arc.Weight)
				if cur, ok := dist[arc.Dst]; !ok || nd < cur {
					dist[arc.Dst] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist
}
