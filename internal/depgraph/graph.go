package depgraph

// DependencyGraph stores vertices of type T and the directed dependency edges
// between them. The zero value is not usable; create graphs with New.
type DependencyGraph[T comparable] struct {
	// vertices holds every vertex in insertion order; position indexes it.
	vertices []T
	position map[T]int
	// dependencies maps a vertex to the vertices it depends on, in the order
	// the edges were added. Vertices without dependencies have no key.
	dependencies edgeIndex[T]

	// Indices used only while TopologicalSort runs. Both are empty otherwise.
	out   edgeIndex[T] // dependency -> dependents
	in    edgeIndex[T] // vertex -> unresolved dependencies
	queue []T
}

// New creates and returns an initialized, empty DependencyGraph.
func New[T comparable]() *DependencyGraph[T] {
	return &DependencyGraph[T]{
		position:     make(map[T]int),
		dependencies: make(edgeIndex[T]),
		out:          make(edgeIndex[T]),
		in:           make(edgeIndex[T]),
	}
}

// Add introduces obj as a vertex. Adding a vertex that already exists does
// nothing.
func (g *DependencyGraph[T]) Add(obj T) {
	if _, ok := g.position[obj]; ok {
		return
	}
	g.position[obj] = len(g.vertices)
	g.vertices = append(g.vertices, obj)
}

// AddDependency records that obj depends on dependency, adding either vertex
// if it is not yet known. Duplicate edges are kept.
func (g *DependencyGraph[T]) AddDependency(obj, dependency T) {
	g.Add(obj)
	g.Add(dependency)
	appendEdge(g.dependencies, obj, dependency)
}

// Contains reports whether obj is a vertex of the graph.
func (g *DependencyGraph[T]) Contains(obj T) bool {
	_, ok := g.position[obj]
	return ok
}

// ContainsDependency reports whether the edge obj -> dependency is recorded.
func (g *DependencyGraph[T]) ContainsDependency(obj, dependency T) bool {
	for _, d := range g.dependencies[obj] {
		if d == dependency {
			return true
		}
	}
	return false
}

// RemoveDependency removes the first recorded edge obj -> dependency. When it
// was obj's last dependency, obj becomes a root. Unknown vertices and edges are
// ignored.
func (g *DependencyGraph[T]) RemoveDependency(obj, dependency T) {
	removeEdge(g.dependencies, obj, dependency)
}

// Remove deletes obj from the graph together with its own dependencies and
// every edge pointing at it.
func (g *DependencyGraph[T]) Remove(obj T) {
	for n, list := range g.dependencies {
		kept := list[:0]
		for _, d := range list {
			if d != obj {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			delete(g.dependencies, n)
			continue
		}
		g.dependencies[n] = kept
	}
	delete(g.dependencies, obj)

	pos, ok := g.position[obj]
	if !ok {
		return
	}
	delete(g.position, obj)
	g.vertices = append(g.vertices[:pos], g.vertices[pos+1:]...)
	for i := pos; i < len(g.vertices); i++ {
		g.position[g.vertices[i]] = i
	}
}

// Len returns the number of vertices.
func (g *DependencyGraph[T]) Len() int {
	return len(g.vertices)
}

// Vertices returns a copy of all vertices in insertion order.
func (g *DependencyGraph[T]) Vertices() []T {
	out := make([]T, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// DependenciesOf returns a copy of the vertices obj depends on, in the order the
// edges were added. It returns nil when obj has no dependencies.
func (g *DependencyGraph[T]) DependenciesOf(obj T) []T {
	return copyEdges(g.dependencies, obj)
}

// hasDependencies reports whether n is not a root.
func (g *DependencyGraph[T]) hasDependencies(n T) bool {
	_, ok := g.dependencies[n]
	return ok
}
