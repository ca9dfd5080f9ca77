// Package dfs defines types and options for depth-first pathfinding,
// including cancellation, a discovery hook and depth limiting.
package dfs

import (
	"context"
	"errors"

	"github.com/LamaAT1/Maze-Solver/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, end, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a cell,
	// with its depth (steps from start). Returning an error aborts traversal.
	OnVisit func(p grid.Position, depth int) error

	// MaxDepth, if non-negative, limits how far from start the search may go.
	// A depth of 0 visits only the start cell. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No discovery hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a discovery hook.
func WithOnVisit(fn func(p grid.Position, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start cell is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first search.
type DFSResult struct {
	// Order records cells in the sequence they were discovered.
	Order []grid.Position

	// Depth maps each discovered cell to its distance (steps) from start
	// along the DFS tree, which is not necessarily the shortest distance.
	Depth map[grid.Position]int

	// Parent maps each discovered cell to the cell it was discovered from.
	// The start cell does not appear in this map.
	Parent map[grid.Position]grid.Position

	// Path is the route found, start..end inclusive; empty if none.
	Path grid.Path

	// MaxStack reports the deepest the explicit stack grew.
	MaxStack int
}

// Found reports whether a path to the end cell was found.
func (r *DFSResult) Found() bool { return len(r.Path) > 0 }
