package morphotactics

import "github.com/emirpasic/gods/sets/linkedhashset"

// dfsState is a polymorphic depth-first traversal over the continuation
// graph, used twice by Compile with different callbacks — once to
// materialize reachable slots, once to wire continuations between them.
//
// On first visit of a vertex it calls visit, recurses over neighbors(vertex),
// then calls finish; on a repeat visit it calls revisit instead of
// descending again. The continuation graph is small in practice (tens to
// low hundreds of slots), so a recursive walk is fine. Traversal order is
// the order in which neighbors returns names, so it is reproducible given
// the same slot enumeration order (testable property 8); the visited set is
// only membership-tested, never iterated.
type dfsState struct {
	visited   *linkedhashset.Set
	neighbors func(name string) []string
	visit     func(name string)
	revisit   func(name string)
	finish    func(name string)
}

func newDFS(neighbors func(string) []string, visit func(string)) *dfsState {
	return &dfsState{visited: linkedhashset.New(), neighbors: neighbors, visit: visit}
}

func (d *dfsState) walk(name string) {
	if d.visited.Contains(name) {
		if d.revisit != nil {
			d.revisit(name)
		}
		return
	}
	d.visited.Add(name)
	d.visit(name)
	for _, n := range d.neighbors(name) {
		d.walk(n)
	}
	if d.finish != nil {
		d.finish(name)
	}
}
