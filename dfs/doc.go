// Package dfs implements depth-first pathfinding on a *grid.Grid.
//
// The search follows the classic recursive formulation (mark a cell
// visited, then try up, down, left, right in turn, backtrack on dead ends,
// stop the moment the end cell is reached) but runs it on an explicit
// stack of (cell, next-neighbor) frames, so stack depth is bounded by heap
// memory rather than the goroutine stack.
//
// Key features:
//   - DFS(g, start, end, opts...): first path found under the fixed
//     up/down/left/right order; NOT necessarily a shortest path.
//   - Hooks: OnVisit (on discovery) with error aborts.
//   - Limits: MaxDepth (frames on the stack beyond start).
//   - Cancellation via context.Context.
//
// Complexity:
//
//   - Time:   O(R×C), each cell is pushed at most once.
//   - Memory: O(R×C) for the visited matrix and stack.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnVisit(fn)      hook on cell discovery; error aborts traversal.
//   - WithMaxDepth(limit)  never push frames deeper than limit (>=0).
//
// Errors:
//
//   - ErrGridNil   if g is nil.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit.
package dfs
