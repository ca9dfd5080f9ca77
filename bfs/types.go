package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/LamaAT1/Maze-Solver/grid"
)

var (
	// ErrGridNil is returned for a nil *grid.Grid.
	ErrGridNil = errors.New("bfs: grid is nil")
	// ErrOptionViolation reports an Option that could not be applied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
	// ErrNotReached is returned by PathTo for a cell the search never reached.
	ErrNotReached = errors.New("bfs: cell not reached")
)

// Option tunes one BFS call. Invalid values are remembered and reported
// as ErrOptionViolation before any cell is touched.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of a BFS call.
type BFSOptions struct {
	Ctx context.Context

	// Frontier hooks, both given the cell and its distance from start.
	// OnEnqueue fires when a cell joins the queue, OnDequeue when it leaves.
	OnEnqueue func(p grid.Position, depth int)
	OnDequeue func(p grid.Position, depth int)

	// OnVisit runs after OnDequeue; a non-nil error stops the search.
	OnVisit func(p grid.Position, depth int) error

	// MaxDepth > 0 caps how far from start cells are enqueued; 0 means no cap.
	MaxDepth int

	err error
}

// DefaultOptions is a background context, no depth cap and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Position, int) {},
		OnDequeue: func(grid.Position, int) {},
		OnVisit:   func(grid.Position, int) error { return nil },
	}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs fn as the enqueue hook. Nil is ignored.
func WithOnEnqueue(fn func(p grid.Position, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs fn as the dequeue hook. Nil is ignored.
func WithOnDequeue(fn func(p grid.Position, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs fn as the visit hook. Nil is ignored.
func WithOnVisit(fn func(p grid.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth caps the search at d steps from start. Zero lifts the cap;
// a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is what one search produced. Order lists cells as they were
// dequeued, Depth and Parent cover every enqueued cell, and Path runs
// start..end (empty when end was not reached).
type BFSResult struct {
	Order  []grid.Position
	Depth  map[grid.Position]int
	Parent map[grid.Position]grid.Position
	Path   grid.Path
}

// Found reports whether end was reached.
func (r *BFSResult) Found() bool { return len(r.Path) > 0 }

// PathTo rebuilds the route from start to dest out of the parent links.
// Returns ErrNotReached if dest was never enqueued.
func (r *BFSResult) PathTo(dest grid.Position) (grid.Path, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	var path grid.Path
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
