// Package dfs defines types and options for depth-first traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering,
// and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates the start vertex is not in
	// [0, VertexCount). It wraps core.ErrOutOfRange.
	ErrStartOutOfRange = fmt.Errorf("dfs: start vertex: %w", core.ErrOutOfRange)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before
	// descending. Return true to traverse into it, false to skip.
	FilterNeighbor func(v int) bool

	// SkippedNeighbors counts neighbors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with no hooks, no depth limit
// (MaxDepth = -1), and no neighbor filtering.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook, called when a vertex is
// first discovered.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook, called after a vertex's
// descendants have been fully explored.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false; skips are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in preorder: each appears the moment it is
	// first discovered, before any of its descendants.
	Order []int

	// Depth holds the discovery depth (#edges from start); -1 if unreached.
	Depth []int

	// Parent holds the vertex from which each one was discovered;
	// -1 for the start and for unreached vertices.
	Parent []int

	// SkippedNeighbors reports how many neighbors were skipped due to
	// FilterNeighbor returning false.
	SkippedNeighbors int
}
