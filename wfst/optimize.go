package wfst

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Optimize determinizes and minimizes the automaton. It is only meaningful
// — and only ever called by the compiler — once the automaton is already
// known to be both input- and output-deterministic (see
// IsInputDeterministic / IsOutputDeterministic), so determinization is a
// no-op here; Optimize's real work is minimization via partition
// refinement (Moore's algorithm, generalized to weighted arcs): states are
// merged when they carry the same final weight and the same sorted set of
// (ilabel, olabel, weight, destination-class) signatures.
//
// Calling Optimize on an automaton that is not deterministic leaves it
// unchanged — callers are expected to have made that check first (see the
// compiler's conditional-optimize decision).
func (a *Automaton) Optimize() {
	if !a.IsInputDeterministic() || !a.IsOutputDeterministic() {
		return
	}
	if len(a.states) == 0 {
		return
	}

	class := a.minimizePartition()
	a.rebuildFromPartition(class)
}

type arcSignature struct {
	ILabel Label
	OLabel Label
	Weight Weight
	Class  int
}

type stateSignature struct {
	Final Weight
	Arcs  []arcSignature
}

// minimizePartition computes a state -> equivalence class mapping by
// iterative signature refinement until the partition stops changing.
func (a *Automaton) minimizePartition() []int {
	n := len(a.states)
	class := make([]int, n)
	for i := range class {
		class[i] = 0
	}
	// Seed the partition by final weight so accepting/non-accepting and
	// differently-weighted final states never merge.
	class = refineByKey(n, func(i int) string { return fmt.Sprintf("%v", a.states[i].final) })

	bound := n + 1
	for round := 0; round < bound; round++ {
		keys := make([]string, n)
		for i := 0; i < n; i++ {
			sig := stateSignature{Final: a.states[i].final}
			for _, arc := range a.states[i].arcs {
				sig.Arcs = append(sig.Arcs, arcSignature{
					ILabel: arc.ILabel,
					OLabel: arc.OLabel,
					Weight: arc.Weight,
					Class:  class[arc.Dst],
				})
			}
			sort.Slice(sig.Arcs, func(x, y int) bool {
				ax, ay := sig.Arcs[x], sig.Arcs[y]
				if ax.ILabel != ay.ILabel {
					return ax.ILabel < ay.ILabel
				}
				if ax.OLabel != ay.OLabel {
					return ax.OLabel < ay.OLabel
				}
				if ax.Weight != ay.Weight {
					return ax.Weight < ay.Weight
				}
				return ax.Class < ay.Class
			})
			hash, err := structhash.Hash(sig, 1)
			if err != nil {
				panic(err)
			}
			keys[i] = hash
		}
		next := refineByKey(n, func(i int) string { return fmt.Sprintf("%d:%s", class[i], keys[i]) })
		if equalPartition(class, next) {
			break
		}
		class = next
	}
	return class
}

// refineByKey assigns a dense class id to each of the n indices, grouping
// indices that produce the same key together. Class ids are assigned in
// first-seen order so the result is deterministic given a deterministic key
// function.
func refineByKey(n int, key func(i int) string) []int {
	seen := make(map[string]int)
	class := make([]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		id, ok := seen[k]
		if !ok {
			id = len(seen)
			seen[k] = id
		}
		class[i] = id
	}
	return class
}

func equalPartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	// Two partitions over the same index set are equal iff they induce the
	// same grouping, i.e. a canonical remap of one matches the other.
	remap := make(map[int]int)
	for i := range a {
		if r, ok := remap[a[i]]; ok {
			if r != b[i] {
				return false
			}
		} else {
			remap[a[i]] = b[i]
		}
	}
	return true
}

// rebuildFromPartition replaces the automaton's states with one
// representative state per equivalence class.
func (a *Automaton) rebuildFromPartition(class []int) {
	numClasses := 0
	for _, c := range class {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}

	rep := make([]int, numClasses)
	for i := range rep {
		rep[i] = -1
	}
	for i, c := range class {
		if rep[c] == -1 {
			rep[c] = i
		}
	}

	newStates := make([]state, numClasses)
	for c := 0; c < numClasses; c++ {
		old := a.states[rep[c]]
		newStates[c] = state{final: old.final}
		for _, arc := range old.arcs {
			newStates[c].arcs = append(newStates[c].arcs, Arc{
				ILabel: arc.ILabel,
				OLabel: arc.OLabel,
				Weight: arc.Weight,
				Dst:    StateID(class[arc.Dst]),
			})
		}
	}

	a.states = newStates
	a.start = StateID(class[a.start])
}
