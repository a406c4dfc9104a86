// Package builder constructs core graphs from raw data: vertex counts,
// adjacency matrices, or edge lists.
//
// The "from data" constructors detect the weight variant automatically:
// when every non-zero weight equals 1.0 the result is a fixed-weight graph,
// otherwise an explicit-weight graph. Undirected inputs insert each edge
// once; the symmetric mirror is handled by core.AddEdge.
//
// Errors:
//
//	ErrEmptyMatrix      - adjacency matrix with zero rows.
//	ErrNonSquareMatrix  - ragged or non-square matrix.
//	ErrNonZeroDiagonal  - self-loop encoded on the diagonal.
//	ErrAsymmetricMatrix - asymmetric matrix for an undirected graph.
//	ErrNilEdges         - nil edge slice.
//	core.ErrOutOfRange  - edge endpoint outside [0, vertexCount).
//	core.ErrSelfLoop    - edge with identical endpoints.
package builder

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// Edge is one edge-list entry: endpoints U→V and a weight.
type Edge struct {
	U, V   int
	Weight float64
}

// Unweighted returns an empty fixed-weight graph with vertexCount vertices.
// Thin facade over core.NewFixedWeight for API discoverability.
func Unweighted(vertexCount int, directed bool) (*core.FixedWeightGraph, error) {
	return core.NewFixedWeight(vertexCount, directed)
}

// Weighted returns an empty explicit-weight graph with vertexCount vertices.
// Thin facade over core.NewExplicitWeight for API discoverability.
func Weighted(vertexCount int, directed bool) (*core.ExplicitWeightGraph, error) {
	return core.NewExplicitWeight(vertexCount, directed)
}

// FromAdjacencyMatrix builds a graph from an n×n adjacency matrix.
//
// Validation: the matrix must be non-empty and square, the diagonal all
// zero, and (for undirected graphs) symmetric. Every violation is a hard
// error before any graph is constructed.
//
// Weight detection: fixed-weight iff every non-zero entry equals 1.0.
// Undirected matrices are scanned with i < j so each edge inserts once.
// Complexity: O(n²).
func FromAdjacencyMatrix(matrix [][]float64, directed bool) (core.Graph, error) {
	n := len(matrix)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}

	allUnit := true
	for i := 0; i < n; i++ {
		if matrix[i][i] != 0.0 {
			return nil, fmt.Errorf("%w: matrix[%d][%d] = %v", ErrNonZeroDiagonal, i, i, matrix[i][i])
		}
		for j := 0; j < n; j++ {
			if v := matrix[i][j]; v != 0.0 && v != 1.0 {
				allUnit = false
			}
		}
	}
	if !directed {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if matrix[i][j] != matrix[j][i] {
					return nil, fmt.Errorf("%w: matrix[%d][%d]=%v vs matrix[%d][%d]=%v",
						ErrAsymmetricMatrix, i, j, matrix[i][j], j, i, matrix[j][i])
				}
			}
		}
	}

	g, err := newVariant(n, directed, !allUnit)
	if err != nil {
		return nil, err
	}
	if directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && matrix[i][j] != 0.0 {
					if err = g.AddEdge(i, j, matrix[i][j]); err != nil {
						return nil, err
					}
				}
			}
		}
	} else {
		// insert each undirected edge once; core mirrors it
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if matrix[i][j] != 0.0 {
					if err = g.AddEdge(i, j, matrix[i][j]); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return g, nil
}

// FromEdges builds a graph with vertexCount vertices from an edge list.
//
// Validation: vertexCount must be non-negative, edges non-nil, every
// endpoint in [0, vertexCount), no self-loops. Weight detection mirrors
// FromAdjacencyMatrix: fixed-weight iff every listed weight equals 1.0
// (an empty list yields a fixed-weight graph).
// Complexity: O(V + E·deg).
func FromEdges(vertexCount int, edges []Edge, directed bool) (core.Graph, error) {
	if edges == nil {
		return nil, ErrNilEdges
	}

	weighted := false
	for _, e := range edges {
		if e.Weight != 1.0 {
			weighted = true

			break
		}
	}

	g, err := newVariant(vertexCount, directed, weighted)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("builder: edge (%d,%d): %w", e.U, e.V, err)
		}
	}

	return g, nil
}

// newVariant picks the concrete graph type for the detected weightedness.
func newVariant(vertexCount int, directed, weighted bool) (core.Graph, error) {
	if weighted {
		return core.NewExplicitWeight(vertexCount, directed)
	}

	return core.NewFixedWeight(vertexCount, directed)
}
