package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/LamaAT1/Maze-Solver/bfs"
	"github.com/LamaAT1/Maze-Solver/dfs"
	"github.com/LamaAT1/Maze-Solver/grid"
)

// DefaultMark is the byte Overlay writes onto path cells by default.
const DefaultMark byte = '*'

var (
	// ErrUnknownMethod is returned by ParseMethod for anything but "dfs" or "bfs".
	ErrUnknownMethod = errors.New("solver: unknown method")
	// ErrGridNil is returned when Solve is given a nil grid.
	ErrGridNil = errors.New("solver: grid is nil")
)

// Method names a traversal strategy.
type Method string

const (
	// MethodDFS selects depth-first search: first path under up/down/left/right order.
	MethodDFS Method = "dfs"
	// MethodBFS selects breadth-first search: a shortest path.
	MethodBFS Method = "bfs"
)

// ParseMethod maps s to a Method. The match is exact and case-sensitive.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodDFS, MethodBFS:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMethod, s)
	}
}

// Solution is the outcome of one Solve call.
type Solution struct {
	Method Method
	Start  grid.Position
	End    grid.Position
	// Path runs start..end inclusive; empty when no path exists.
	Path grid.Path
	// Explored counts the cells the strategy visited.
	Explored int
}

// Found reports whether a path was found.
func (s *Solution) Found() bool { return len(s.Path) > 0 }

// Step names the traversal event passed to a TraceFunc.
type Step string

const (
	StepEnqueue Step = "enqueue" // bfs: cell added to the frontier
	StepDequeue Step = "dequeue" // bfs: cell taken from the frontier
	StepVisit   Step = "visit"   // dfs: cell discovered
)

// TraceFunc observes each traversal step with the cell and its depth.
type TraceFunc func(step Step, p grid.Position, depth int)

// Option configures Solve.
type Option func(*options)

type options struct {
	trace TraceFunc
}

// WithTrace installs fn as an observer of the strategy's hooks.
// A nil fn is ignored.
func WithTrace(fn TraceFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.trace = fn
		}
	}
}

// Solve runs method m on g between its start and end markers.
// A grid with zero rows or columns yields an empty Solution without
// traversal. Marker errors from grid.Endpoints are returned as-is.
func Solve(ctx context.Context, g *grid.Grid, m Method, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	sol := &Solution{Method: m, Path: grid.Path{}}
	if g.Empty() {
		return sol, nil
	}

	start, end, err := g.Endpoints()
	if err != nil {
		return nil, err
	}
	sol.Start, sol.End = start, end

	switch m {
	case MethodDFS:
		dopts := []dfs.Option{dfs.WithContext(ctx)}
		if o.trace != nil {
			dopts = append(dopts, dfs.WithOnVisit(func(p grid.Position, depth int) error {
				o.trace(StepVisit, p, depth)
				return nil
			}))
		}
		res, err := dfs.DFS(g, start, end, dopts...)
		if err != nil {
			return nil, err
		}
		sol.Path, sol.Explored = res.Path, len(res.Order)
	case MethodBFS:
		bopts := []bfs.Option{bfs.WithContext(ctx)}
		if o.trace != nil {
			bopts = append(bopts,
				bfs.WithOnEnqueue(func(p grid.Position, depth int) { o.trace(StepEnqueue, p, depth) }),
				bfs.WithOnDequeue(func(p grid.Position, depth int) { o.trace(StepDequeue, p, depth) }),
			)
		}
		res, err := bfs.BFS(g, start, end, bopts...)
		if err != nil {
			return nil, err
		}
		sol.Path, sol.Explored = res.Path, len(res.Order)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, string(m))
	}

	return sol, nil
}

// Overlay marks path onto g with mark. An empty path leaves g unchanged;
// reporting "no path" is the caller's job.
func Overlay(g *grid.Grid, path grid.Path, mark byte) {
	if len(path) == 0 {
		return
	}
	g.MarkPath(path, mark)
}
