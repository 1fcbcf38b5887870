package depgraph

import "fmt"

// TopologicalSort returns every vertex exactly once, ordered so that each
// vertex comes after all of its dependencies.
//
// It fails with ErrNoRootsFound when no vertex is free of dependencies, and
// with ErrCycleDetected when some vertices can never be resolved. A non-empty
// graph without roots is cyclic, so that error matches both. The stored edges
// are not modified and no state is kept between calls, so the graph may be
// changed and sorted again after a failure.
func (g *DependencyGraph[T]) TopologicalSort() ([]T, error) {
	defer g.cleanup()

	if err := g.prepare(); err != nil {
		return nil, err
	}
	return g.peel()
}

// prepare fills the transient indices from the stored edges and queues every
// root vertex.
func (g *DependencyGraph[T]) prepare() error {
	for _, n := range g.vertices {
		if !g.hasDependencies(n) {
			g.queue = append(g.queue, n)
			continue
		}
		for _, m := range g.dependencies[n] {
			appendEdge(g.out, m, n)
			appendEdge(g.in, n, m)
		}
	}

	if len(g.queue) == 0 {
		if len(g.vertices) == 0 {
			return ErrNoRootsFound
		}
		return fmt.Errorf("%w: %w: all %d vertices have dependencies", ErrNoRootsFound, ErrCycleDetected, len(g.vertices))
	}
	return nil
}

// peel resolves queued roots one at a time, releasing the dependents whose
// last unresolved dependency was just resolved.
func (g *DependencyGraph[T]) peel() ([]T, error) {
	result := make([]T, 0, len(g.vertices))
	for len(g.queue) > 0 {
		n := g.queue[0]
		g.queue = g.queue[1:]
		result = append(result, n)

		for _, m := range copyEdges(g.out, n) {
			removeEdge(g.in, m, n)
			removeEdge(g.out, n, m)
			if _, unresolved := g.in[m]; !unresolved {
				g.queue = append(g.queue, m)
			}
		}
	}

	if len(g.in) > 0 {
		return nil, fmt.Errorf("%w: %d vertices unresolved", ErrCycleDetected, len(g.in))
	}
	return result, nil
}

// cleanup discards the transient indices.
func (g *DependencyGraph[T]) cleanup() {
	clear(g.out)
	clear(g.in)
	g.queue = nil
}
