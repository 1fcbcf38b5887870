package depgraph

import "slices"

// Visit states for FindCycle.
const (
	unvisited = iota
	onPath
	finished
)

// FindCycle returns one dependency cycle as a path that starts and ends with
// the same vertex, following edges from a vertex to its dependencies. It
// returns nil when the graph is acyclic. Vertices and edges are explored in
// insertion order, so the same graph always yields the same cycle.
func (g *DependencyGraph[T]) FindCycle() []T {
	state := make(map[T]int, len(g.vertices))
	var path []T

	var visit func(n T) []T
	visit = func(n T) []T {
		switch state[n] {
		case finished:
			return nil
		case onPath:
			start := slices.Index(path, n)
			return append(slices.Clone(path[start:]), n)
		}

		state[n] = onPath
		path = append(path, n)
		for _, d := range g.dependencies[n] {
			if cycle := visit(d); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[n] = finished
		return nil
	}

	for _, n := range g.vertices {
		if state[n] == unvisited {
			if cycle := visit(n); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
