// Package bfs provides breadth-first search over a *grid.Grid, returning
// the shortest start→end path together with visit order, depths and
// parent links.
//
// What
//
//   - Explore open cells in non-decreasing distance (steps) from start.
//   - Neighbors are expanded in the fixed order up, down, left, right.
//   - Stops as soon as the end cell is dequeued.
//   - Returns a BFSResult containing:
//   - Order:  dequeue sequence
//   - Depth:  map from cell → distance (steps) from start
//   - Parent: map from cell → the cell it was discovered from
//   - Path:   start..end inclusive, empty when end is unreachable
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//
// Why
//
//   - Every step costs 1, so the first time a cell is reached is along a
//     shortest route; Path is therefore a fewest-cells path.
//
// Edge cases
//
//   - start == end (and open): Path is [start].
//   - start or end on a wall or out of bounds: empty Path, no error.
//   - zero rows or zero columns: empty Path, no traversal.
//
// Complexity (R = rows, C = columns)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C) for the visited matrix, queue and parent map
//
// Usage
//
//	res, err := bfs.BFS(g, start, end)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, context error or hook error
//	}
//	if !res.Found() {
//		// no path
//	}
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached       from PathTo for a cell BFS never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
