// Package builder: sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Every sentinel wraps one of the two core categories
//     (core.ErrInvalidArgument / core.ErrOutOfRange), so callers may test
//     either the specific builder failure or the broad class.
//   - Implementations attach parameters at the return site with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// ErrEmptyMatrix indicates an adjacency matrix with zero rows.
// Usage: if errors.Is(err, builder.ErrEmptyMatrix) { ... }.
var ErrEmptyMatrix = fmt.Errorf("builder: matrix must be non-empty: %w", core.ErrInvalidArgument)

// ErrNonSquareMatrix indicates a row whose length differs from the row count.
var ErrNonSquareMatrix = fmt.Errorf("builder: matrix must be square: %w", core.ErrInvalidArgument)

// ErrNonZeroDiagonal indicates a non-zero diagonal entry, i.e. a self-loop.
var ErrNonZeroDiagonal = fmt.Errorf("builder: diagonal must be zero: %w", core.ErrInvalidArgument)

// ErrAsymmetricMatrix indicates matrix[i][j] != matrix[j][i] for an
// undirected construction.
var ErrAsymmetricMatrix = fmt.Errorf("builder: undirected graph requires a symmetric matrix: %w", core.ErrInvalidArgument)

// ErrNilEdges indicates a nil edge slice passed to FromEdges.
var ErrNilEdges = fmt.Errorf("builder: edges must be non-nil: %w", core.ErrInvalidArgument)
