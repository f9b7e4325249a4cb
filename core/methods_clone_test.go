package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsort/core"
)

// TestClone_Isolation verifies that mutating a clone never disturbs the
// original graph, in either adjacency direction.
func TestClone_Isolation(t *testing.T) {
	g := core.New[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "a", 3)

	clone := g.Clone()
	clone.RemoveEdge("c", "a")
	clone.RemoveNode("b")

	// Original still carries every node and edge.
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())
	w, ok := g.Edge("c", "a")
	require.True(t, ok)
	require.Equal(t, 3, w)
	require.Equal(t, 1, g.InDegree("b"))

	// Clone reflects only its own mutations.
	require.False(t, clone.HasNode("b"))
	require.Equal(t, 0, clone.EdgeCount())
}

// TestClone_ReverseIsolation verifies the mirror case: mutating the original
// after cloning leaves the clone intact.
func TestClone_ReverseIsolation(t *testing.T) {
	g := core.New[int, int]()
	g.AddEdge(1, 2, 10)
	clone := g.Clone()

	g.RemoveNode(1)
	g.AddEdge(3, 4, 30)

	require.ElementsMatch(t, []int{1, 2}, slices.Collect(clone.Nodes()))
	w, ok := clone.Edge(1, 2)
	require.True(t, ok)
	require.Equal(t, 10, w)
}

// TestClone_Empty covers the degenerate case.
func TestClone_Empty(t *testing.T) {
	g := core.New[string, struct{}]()
	clone := g.Clone()
	require.Equal(t, 0, clone.NodeCount())
	clone.AddNode("a")
	require.False(t, g.HasNode("a"))
}
