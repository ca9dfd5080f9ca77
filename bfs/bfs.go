package bfs

import (
	"context"
	"fmt"

	"github.com/LamaAT1/Maze-Solver/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *grid.Grid
	opts    BFSOptions
	ctx     context.Context
	end     grid.Position
	offsets [4]grid.Position
	queue   []queueItem
	visited [][]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start to end,
// applying any number of functional Options.
// An unreachable end (including a closed or out-of-bounds start or end,
// or an empty grid) yields an empty Path and a nil error.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *grid.Grid, start, end grid.Position, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &BFSResult{
		Order:  []grid.Position{},
		Depth:  map[grid.Position]int{},
		Parent: map[grid.Position]grid.Position{},
		Path:   grid.Path{},
	}
	// Nothing to traverse, or no route can start/finish here
	if g.Empty() || !g.IsOpen(start.Row, start.Col) || !g.IsOpen(end.Row, end.Col) {
		return res, nil
	}

	// Prepare walker
	rows, cols := g.Rows(), g.Cols()
	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, cols)
	}
	w := &walker{
		grid: g,
		opts: o,
		ctx:  o.Ctx,
		end:  end,
		// up, down, left, right
		offsets: [4]grid.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}},
		queue:   make([]queueItem, 0, rows),
		visited: visited,
		res:     res,
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return res, err
	}

	if path, err := res.PathTo(end); err == nil {
		res.Path = path
	}

	return res, nil
}

// enqueue marks p visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(p grid.Position, d int) {
	w.visited[p.Row][p.Col] = true
	w.res.Depth[p] = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, the end is dequeued, an error,
// or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.pos == w.end {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.pos, item.depth)

	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}

	return nil
}

// enqueueNeighbors enqueues each open, unseen neighbor of item in
// up/down/left/right order, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range w.offsets {
		nbr := item.pos.Add(d)
		if !w.grid.IsOpen(nbr.Row, nbr.Col) || w.visited[nbr.Row][nbr.Col] {
			continue
		}
		w.res.Parent[nbr] = item.pos
		w.enqueue(nbr, nextDepth)
	}
}
