package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intgraph/core"
)

// TestAdjacencyList_SortedAndCopied verifies ascending neighbor order and
// that the export is an independent copy.
func TestAdjacencyList_SortedAndCopied(t *testing.T) {
	g := mustExplicit(t, 4, true)
	// insert out of order on purpose
	require.NoError(t, g.AddEdge(0, 3, 3.0))
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(0, 2, 2.0))

	adj := g.AdjacencyList()
	require.Equal(t, []core.Neighbor{
		{To: 1, Weight: 1.0},
		{To: 2, Weight: 2.0},
		{To: 3, Weight: 3.0},
	}, adj[0])

	// mutating the export must not leak into the graph
	adj[0][0] = core.Neighbor{To: 99, Weight: -1}
	adj[1] = append(adj[1], core.Neighbor{To: 0, Weight: 0})
	fresh := g.AdjacencyList()
	require.Equal(t, 1, fresh[0][0].To)
	require.Empty(t, fresh[1])
}

// TestAdjacencyMatrix_Properties checks weights, symmetry, and the
// always-zero diagonal.
func TestAdjacencyMatrix_Properties(t *testing.T) {
	g := mustExplicit(t, 3, false)
	require.NoError(t, g.AddEdge(0, 1, 2.5))
	require.NoError(t, g.AddEdge(1, 2, 4.0))

	m := g.AdjacencyMatrix()
	require.Len(t, m, 3)
	for i := range m {
		require.Len(t, m[i], 3)
		require.Equal(t, 0.0, m[i][i])
	}
	require.Equal(t, 2.5, m[0][1])
	require.Equal(t, 2.5, m[1][0])
	require.Equal(t, 4.0, m[1][2])
	require.Equal(t, 4.0, m[2][1])
	require.Equal(t, 0.0, m[0][2])
}

// TestAdjacencyMatrix_FixedWeight exports 1.0 for every present edge.
func TestAdjacencyMatrix_FixedWeight(t *testing.T) {
	g := mustFixed(t, 2, true)
	require.NoError(t, g.AddEdge(0, 1, 123.0))

	m := g.AdjacencyMatrix()
	require.Equal(t, 1.0, m[0][1])
	require.Equal(t, 0.0, m[1][0])
}

// TestIncidenceMatrix_Undirected checks column count, +1/+1 encoding, and
// (min,max) column order.
func TestIncidenceMatrix_Undirected(t *testing.T) {
	g := mustFixed(t, 4, false)
	require.NoError(t, g.AddEdge(2, 3, 1.0))
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(1, 2, 1.0))

	m := g.IncidenceMatrix()
	require.Len(t, m, 4)
	// columns ordered (0,1), (1,2), (2,3) regardless of insertion order
	want := [][]int{
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 1},
	}
	require.Equal(t, want, m)

	// every column has exactly two non-zero entries summing to 2
	for j := 0; j < 3; j++ {
		nonzero, sum := 0, 0
		for i := 0; i < 4; i++ {
			if m[i][j] != 0 {
				nonzero++
				sum += m[i][j]
			}
		}
		require.Equal(t, 2, nonzero)
		require.Equal(t, 2, sum)
	}
}

// TestIncidenceMatrix_Directed checks -1/+1 encoding and lexicographic
// (u,v) column order; opposite arcs form two distinct columns.
func TestIncidenceMatrix_Directed(t *testing.T) {
	g := mustFixed(t, 3, true)
	require.NoError(t, g.AddEdge(1, 0, 1.0))
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(1, 2, 1.0))

	m := g.IncidenceMatrix()
	// columns ordered (0,1), (1,0), (1,2)
	want := [][]int{
		{-1, 1, 0},
		{1, -1, -1},
		{0, 0, 1},
	}
	require.Equal(t, want, m)

	// every column sums to 0
	for j := 0; j < 3; j++ {
		sum := 0
		for i := 0; i < 3; i++ {
			sum += m[i][j]
		}
		require.Equal(t, 0, sum)
	}
}

// TestIncidenceMatrix_NoEdges yields n rows of zero columns.
func TestIncidenceMatrix_NoEdges(t *testing.T) {
	g := mustFixed(t, 3, false)
	m := g.IncidenceMatrix()
	require.Len(t, m, 3)
	for _, row := range m {
		require.Empty(t, row)
	}
}
