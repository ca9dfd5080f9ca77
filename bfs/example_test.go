package bfs_test

import (
	"fmt"

	"github.com/LamaAT1/Maze-Solver/bfs"
	"github.com/LamaAT1/Maze-Solver/grid"
)

// ExampleBFS finds the fewest-cells route through a small maze and marks it.
func ExampleBFS() {
	g := grid.Parse("" +
		"S..#\n" +
		".#.#\n" +
		"...E\n")
	start, end, err := g.Endpoints()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Path), res.Path)
	g.MarkPath(res.Path, '*')
	fmt.Print(g)
	// Output:
	// 6 [(0,0) (1,0) (2,0) (2,1) (2,2) (2,3)]
	// S..#
	// *#.#
	// ***E
}
