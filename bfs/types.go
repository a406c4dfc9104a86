// Package bfs defines tunable options, errors, and the result type for
// breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex is not in
	// [0, VertexCount). It wraps core.ErrOutOfRange.
	ErrStartOutOfRange = fmt.Errorf("bfs: start vertex: %w", core.ErrOutOfRange)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for unreached targets.
	ErrNoPath = errors.New("bfs: no path to target")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a vertex is dequeued and recorded, with its
	// distance from the start. Returning an error aborts the traversal.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering,
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in dequeue sequence.
//   - Depth: distance (in edges) from the start; -1 for unreached vertices.
//   - Parent: predecessor in the BFS tree; -1 for the start and unreached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached, ErrStartOutOfRange if dest is
// not a valid vertex.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) {
		return nil, fmt.Errorf("bfs: target %d: %w", dest, core.ErrOutOfRange)
	}
	if r.Depth[dest] < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
