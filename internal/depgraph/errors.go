package depgraph

import "errors"

var (
	// ErrNoRootsFound is returned by TopologicalSort when no vertex is free of
	// dependencies. This covers the empty graph.
	ErrNoRootsFound = errors.New("no root vertices found")

	// ErrCycleDetected is returned by TopologicalSort when the remaining
	// vertices depend on each other and cannot be resolved.
	ErrCycleDetected = errors.New("cycle detected")
)
