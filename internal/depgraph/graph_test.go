package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New[string]()
	require.NotNil(t, g)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.dependencies)
}

func TestAddDependency(t *testing.T) {
	g := New[string]()

	g.AddDependency("vertex1", "dependency")

	assert.True(t, g.Contains("vertex1"))
	assert.True(t, g.Contains("dependency"))
	assert.True(t, g.ContainsDependency("vertex1", "dependency"))
	assert.False(t, g.ContainsDependency("dependency", "vertex1"))
	assert.Equal(t, []string{"vertex1", "dependency"}, g.Vertices())
}

func TestAddDependency_KeepsDuplicates(t *testing.T) {
	g := New[string]()

	g.AddDependency("a", "b")
	g.AddDependency("a", "b")

	assert.Equal(t, []string{"b", "b"}, g.DependenciesOf("a"))
	assert.Equal(t, 2, g.Len())

	g.RemoveDependency("a", "b")
	assert.True(t, g.ContainsDependency("a", "b"), "only the first occurrence is removed")
	g.RemoveDependency("a", "b")
	assert.False(t, g.ContainsDependency("a", "b"))
}

func TestAdd(t *testing.T) {
	g := New[string]()

	g.Add("a")
	g.Add("a") // Test idempotency
	g.Add("b")

	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Nil(t, g.DependenciesOf("a"))
}

func TestRemoveDependency(t *testing.T) {
	g := New[string]()
	g.AddDependency("vertex1", "dependency")
	require.True(t, g.ContainsDependency("vertex1", "dependency"))

	g.RemoveDependency("vertex1", "dependency")

	assert.True(t, g.Contains("vertex1"))
	assert.True(t, g.Contains("dependency"))
	assert.False(t, g.ContainsDependency("vertex1", "dependency"))
	assert.NotContains(t, g.dependencies, "vertex1", "an emptied list must not be kept")
}

func TestRemoveDependency_UnknownIsNoop(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "b")
	before := g.Vertices()

	assert.NotPanics(t, func() {
		g.RemoveDependency("", "")
		g.RemoveDependency("a", "")
		g.RemoveDependency("", "a")
		g.RemoveDependency("missing", "b")
		g.RemoveDependency("a", "missing")
	})

	assert.Equal(t, before, g.Vertices())
	assert.Equal(t, []string{"b"}, g.DependenciesOf("a"))
}

func TestRemove(t *testing.T) {
	g := New[string]()
	g.AddDependency("v1", "v2")

	g.Remove("v1")

	assert.False(t, g.ContainsDependency("v1", "v2"))
	assert.False(t, g.Contains("v1"))
	assert.True(t, g.Contains("v2"))
}

func TestRemove_DropsIncomingEdges(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "c")
	g.AddDependency("b", "c")
	g.AddDependency("b", "a")
	g.AddDependency("c", "d")

	g.Remove("c")

	assert.False(t, g.Contains("c"))
	for _, v := range g.Vertices() {
		assert.False(t, g.ContainsDependency(v, "c"), "%s still depends on removed vertex", v)
	}
	assert.Equal(t, []string{"a", "b", "d"}, g.Vertices())
	assert.NotContains(t, g.dependencies, "a", "a lost its only dependency and must be a root")
	assert.Equal(t, []string{"a"}, g.DependenciesOf("b"))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "b"}, order)
}

func TestRemove_Unknown(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "b")

	g.Remove("missing")

	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.True(t, g.ContainsDependency("a", "b"))
}

func TestDependenciesOf_ReturnsCopy(t *testing.T) {
	g := New[string]()
	g.AddDependency("a", "b")

	deps := g.DependenciesOf("a")
	deps[0] = "mutated"

	assert.Equal(t, []string{"b"}, g.DependenciesOf("a"))
}

func TestDependencyGraph_ComparableStructs(t *testing.T) {
	type module struct {
		Name    string
		Version int
	}
	g := New[module]()
	app := module{"app", 1}
	lib := module{"lib", 2}

	g.AddDependency(app, lib)

	assert.True(t, g.ContainsDependency(module{"app", 1}, module{"lib", 2}))
	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []module{lib, app}, order)
}
