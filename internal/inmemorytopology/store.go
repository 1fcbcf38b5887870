// Package inmemorytopology provides a simple, thread-safe, in-memory
// implementation of the topologystore.Store interface.
package inmemorytopology

import (
	"context"
	"sync"

	"github.com/vk/depgraph/internal/ctxlog"
	"github.com/vk/depgraph/internal/depgraph"
	"github.com/vk/depgraph/internal/topologystore"
)

// Store implements the topologystore.Store interface by holding a single mutex
// for the duration of every call into the wrapped graph.
type Store[T comparable] struct {
	mu    sync.Mutex
	graph *depgraph.DependencyGraph[T]
}

var _ topologystore.Store[string] = (*Store[string])(nil)

// New creates a new, empty in-memory topology store.
func New[T comparable]() *Store[T] {
	return &Store[T]{graph: depgraph.New[T]()}
}

// Add registers an item without dependencies.
func (s *Store[T]) Add(ctx context.Context, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.Add(item)
}

// AddDependency records a dependency edge.
func (s *Store[T]) AddDependency(ctx context.Context, item, dependency T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Adding dependency.", "item", item, "dependency", dependency)
	s.graph.AddDependency(item, dependency)
}

// RemoveDependency removes a dependency edge if it exists.
func (s *Store[T]) RemoveDependency(ctx context.Context, item, dependency T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.RemoveDependency(item, dependency)
}

// Remove deletes an item and its edges.
func (s *Store[T]) Remove(ctx context.Context, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Removing item.", "item", item)
	s.graph.Remove(item)
}

// Contains reports whether an item is registered.
func (s *Store[T]) Contains(ctx context.Context, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Contains(item)
}

// DependenciesOf returns a copy of the direct dependencies of an item.
func (s *Store[T]) DependenciesOf(ctx context.Context, item T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.DependenciesOf(item)
}

// Items returns all items in registration order.
func (s *Store[T]) Items(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Vertices()
}

// Order sorts the topology. The lock is held for the whole sort because the
// graph keeps its working indices in place while sorting.
func (s *Store[T]) Order(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Sorting topology.", "items", s.graph.Len())
	order, err := s.graph.TopologicalSort()
	if err != nil {
		logger.Debug("Topology cannot be ordered.", "error", err)
		return nil, err
	}
	return order, nil
}

// Tree unfolds the topology into a dependency tree.
func (s *Store[T]) Tree(ctx context.Context) *depgraph.Tree[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree := s.graph.DependencyTree()
	ctxlog.FromContext(ctx).Debug("Unfolded dependency tree.", "items", s.graph.Len(), "nodes", tree.Len())
	return tree
}

// Cycle returns one dependency cycle, or nil when there is none.
func (s *Store[T]) Cycle(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycle := s.graph.FindCycle()
	if cycle != nil {
		ctxlog.FromContext(ctx).Debug("Found dependency cycle.", "length", len(cycle)-1)
	}
	return cycle
}
