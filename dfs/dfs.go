// Package dfs implements depth-first pathfinding on a *grid.Grid using an
// explicit stack that reproduces the recursive search order.
package dfs

import (
	"fmt"

	"github.com/LamaAT1/Maze-Solver/grid"
)

// frame is one level of the explicit stack: the cell being explored and
// the index of the next neighbor offset to try.
type frame struct {
	pos  grid.Position
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *grid.Grid
	opts    DFSOptions
	end     grid.Position
	offsets [4]grid.Position
	stack   []frame
	visited [][]bool
	res     *DFSResult
}

// DFS searches g depth-first from start to end, trying neighbors in the
// order up, down, left, right. The returned Path is the first route found
// under that order and is not necessarily the shortest. An unreachable end
// (including a closed or out-of-bounds start or end, or an empty grid)
// yields an empty Path and a nil error.
// Returns ErrGridNil, the context error, or a wrapped OnVisit error.
func DFS(g *grid.Grid, start, end grid.Position, opts ...Option) (*DFSResult, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &DFSResult{
		Order:  []grid.Position{},
		Depth:  map[grid.Position]int{},
		Parent: map[grid.Position]grid.Position{},
		Path:   grid.Path{},
	}
	if g.Empty() || !g.IsOpen(start.Row, start.Col) || !g.IsOpen(end.Row, end.Col) {
		return res, nil
	}

	visited := make([][]bool, g.Rows())
	for r := range visited {
		visited[r] = make([]bool, g.Cols())
	}
	w := &dfsWalker{
		grid: g,
		opts: dopts,
		end:  end,
		// up, down, left, right
		offsets: [4]grid.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}},
		visited: visited,
		res:     res,
	}

	// 4. Traverse
	if err := w.discover(start, grid.Position{}, false); err != nil {
		return res, err
	}
	if start == end {
		res.Path = grid.Path{start}
		return res, nil
	}
	if err := w.traverse(); err != nil {
		return res, err
	}

	return res, nil
}

// discover records p as reached (from parent when hasParent), runs the
// OnVisit hook and pushes a frame for it unless it is the end cell.
func (w *dfsWalker) discover(p, parent grid.Position, hasParent bool) error {
	depth := len(w.stack)
	w.visited[p.Row][p.Col] = true
	w.res.Depth[p] = depth
	if hasParent {
		w.res.Parent[p] = parent
	}
	w.res.Order = append(w.res.Order, p)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", p, err)
		}
	}

	if p != w.end {
		w.stack = append(w.stack, frame{pos: p})
		if len(w.stack) > w.res.MaxStack {
			w.res.MaxStack = len(w.stack)
		}
	}

	return nil
}

// traverse drives the explicit stack until the end is reached or every
// reachable cell has been exhausted. It honors cancellation and MaxDepth.
func (w *dfsWalker) traverse() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. All neighbors tried: backtrack
		top := &w.stack[len(w.stack)-1]
		if top.next == len(w.offsets) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 3. Advance to the next neighbor of the top frame
		cur := top.pos
		nbr := cur.Add(w.offsets[top.next])
		top.next++
		if !w.grid.IsOpen(nbr.Row, nbr.Col) || w.visited[nbr.Row][nbr.Col] {
			continue
		}

		// 4. Depth limit: the neighbor would sit at depth len(stack)
		if w.opts.MaxDepth >= 0 && len(w.stack) > w.opts.MaxDepth {
			continue
		}

		// 5. Discover; reaching the end unwinds the stack into the path
		if err := w.discover(nbr, cur, true); err != nil {
			return err
		}
		if nbr == w.end {
			w.res.Path = w.unwind()
			return nil
		}
	}

	return nil
}

// unwind returns the cells on the stack followed by the end cell.
func (w *dfsWalker) unwind() grid.Path {
	path := make(grid.Path, 0, len(w.stack)+1)
	for _, f := range w.stack {
		path = append(path, f.pos)
	}

	return append(path, w.end)
}
