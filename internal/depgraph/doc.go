// Package depgraph records directed "depends-on" edges between opaque items and
// resolves them into an order in which every item comes after the items it
// depends on.
//
// # Model
//
// A DependencyGraph holds a set of vertices and, for each vertex that has any,
// the list of vertices it depends on. The edge obj -> dependency means obj
// requires dependency to be resolved first. A vertex with no recorded
// dependencies is a root: it can be resolved immediately.
//
//	g := depgraph.New[string]()
//	g.AddDependency("api", "db")
//	g.AddDependency("api", "cache")
//	g.AddDependency("cache", "db")
//
//	order, err := g.TopologicalSort() // [db cache api]
//
// # Ordering
//
// TopologicalSort peels roots off a queue (Kahn's algorithm) using indices that
// live only for the duration of the call. Vertices are kept in insertion order,
// so for the same sequence of mutations the result is always the same.
//
// DependencyTree unfolds the graph into a Tree rooted at a synthetic node. Every
// root vertex hangs off the synthetic node and every dependent is nested under
// each of its dependencies. Shared dependencies are repeated once per path, and
// a branch stops expanding when an item reappears among its own ancestors.
//
// # Thread-Safety
//
// DependencyGraph does no locking. Callers sharing a graph between goroutines
// must serialize access; see internal/inmemorytopology for a guarded store.
package depgraph
