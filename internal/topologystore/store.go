// Package topologystore defines the interface for storing and resolving a
// dependency topology that is shared between goroutines.
//
// # Why Topology Store Exists
//
// depgraph.DependencyGraph is deliberately single-threaded. Components that load
// manifests concurrently, or that serve several readers at once, need the same
// operations behind a lock. The Store interface names that contract so callers
// do not depend on a particular locking strategy.
//
// # Lifecycle and Usage
//
// A store is:
//  1. **Created** once per run (ephemeral, nothing is persisted)
//  2. **Populated** from one or more manifests via Add and AddDependency
//  3. **Resolved** with Order or Tree, as often as needed
//  4. **Discarded** when the run ends
//
// Every call is atomic with respect to every other call, including the sort
// and the tree unfolding.
package topologystore

import (
	"context"

	"github.com/vk/depgraph/internal/depgraph"
)

// Store is the interface for managing a shared dependency topology.
//
// Items are identified by values of type T. Unlike a plain DependencyGraph, a
// Store is safe for concurrent use.
type Store[T comparable] interface {
	// Add registers item as a vertex. Adding an existing item is a no-op.
	Add(ctx context.Context, item T)

	// AddDependency records that item depends on dependency, registering
	// either one if needed.
	AddDependency(ctx context.Context, item, dependency T)

	// RemoveDependency removes the first recorded edge item -> dependency.
	// Unknown items and edges are ignored.
	RemoveDependency(ctx context.Context, item, dependency T)

	// Remove deletes item and every edge that touches it.
	Remove(ctx context.Context, item T)

	// Contains reports whether item is registered.
	Contains(ctx context.Context, item T) bool

	// DependenciesOf returns the items that item directly depends on, in the
	// order they were added. The slice is a copy.
	DependenciesOf(ctx context.Context, item T) []T

	// Items returns all registered items in registration order.
	Items(ctx context.Context) []T

	// Order returns every item after all of its dependencies. It returns an
	// error matching depgraph.ErrNoRootsFound or depgraph.ErrCycleDetected when
	// no such order exists.
	Order(ctx context.Context) ([]T, error)

	// Tree unfolds the topology into a dependency tree.
	Tree(ctx context.Context) *depgraph.Tree[T]

	// Cycle returns one dependency cycle, first vertex repeated at the end, or
	// nil when the topology is acyclic.
	Cycle(ctx context.Context) []T
}
