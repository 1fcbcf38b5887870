package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertValidOrder checks that order lists every key of want exactly once and
// that each item comes after all of its dependencies. want maps every item to
// its dependencies.
func AssertValidOrder[T comparable](t *testing.T, order []T, want map[T][]T) {
	t.Helper()

	require.Len(t, order, len(want), "order must list every item once")
	position := make(map[T]int, len(order))
	for i, item := range order {
		_, dup := position[item]
		require.False(t, dup, "item %v appears more than once", item)
		_, known := want[item]
		require.True(t, known, "unexpected item %v", item)
		position[item] = i
	}
	for item, deps := range want {
		for _, dep := range deps {
			assert.Less(t, position[dep], position[item], "%v must come after its dependency %v", item, dep)
		}
	}
}
