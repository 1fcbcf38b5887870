package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCycle(t *testing.T) {
	testCases := []struct {
		name  string
		edges [][2]string
		alone []string
		want  []string
	}{
		{name: "empty graph has no cycles"},
		{name: "vertices without edges have no cycles", alone: []string{"a", "b", "c"}},
		{
			name:  "valid dag has no cycles",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"c", "d"}},
		},
		{
			name:  "simple direct cycle is detected",
			edges: [][2]string{{"a", "b"}, {"b", "a"}},
			want:  []string{"a", "b", "a"},
		},
		{
			name:  "self dependency is detected",
			edges: [][2]string{{"a", "a"}},
			want:  []string{"a", "a"},
		},
		{
			name:  "longer cycle is detected",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}},
			want:  []string{"a", "b", "c", "d", "a"},
		},
		{
			name:  "cycle in a disjoint component is detected",
			edges: [][2]string{{"a", "b"}, {"x", "y"}, {"y", "z"}, {"z", "y"}},
			want:  []string{"y", "z", "y"},
		},
		{
			name:  "cycle with an exit is detected",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}},
			want:  []string{"a", "b", "c", "a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := New[string]()
			for _, v := range tc.alone {
				g.Add(v)
			}
			for _, e := range tc.edges {
				g.AddDependency(e[0], e[1])
			}

			assert.Equal(t, tc.want, g.FindCycle())
		})
	}
}

func TestFindCycle_AgreesWithSort(t *testing.T) {
	g := New[int]()
	for i := 1; i < 50; i++ {
		g.AddDependency(i, i-1)
	}
	_, err := g.TopologicalSort()
	assert.NoError(t, err)
	assert.Nil(t, g.FindCycle())

	g.AddDependency(0, 49)
	_, err = g.TopologicalSort()
	assert.ErrorIs(t, err, ErrCycleDetected)
	cycle := g.FindCycle()
	assert.Len(t, cycle, 51)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
}
