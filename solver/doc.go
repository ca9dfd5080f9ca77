// Package solver ties the grid model to the two traversal strategies.
//
// It selects a strategy by name (Method), runs it between a grid's start
// and end markers (Solve) and overlays the resulting path onto the grid
// (Overlay).
//
//	g, _ := grid.Load("maze.txt")
//	m, _ := solver.ParseMethod("bfs")
//	sol, err := solver.Solve(ctx, g, m)
//	if err == nil && sol.Found() {
//		solver.Overlay(g, sol.Path, solver.DefaultMark)
//	}
package solver
