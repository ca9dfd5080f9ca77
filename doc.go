// Package mazesolver finds a route through a text maze and draws it back
// onto the maze.
//
// What is mazesolver?
//
//	A small, dependency-light toolkit plus command:
//		• grid/   — parse a text maze, query open cells, mark and render paths
//		• bfs/    — breadth-first search: a shortest start→end path
//		• dfs/    — depth-first search: the first path under up/down/left/right
//		• solver/ — pick a strategy by name, solve, overlay the path
//		• cmd/mazesolver — the command-line front end
//
// Maze format:
//
//	S.#
//	.#.
//	..E
//
// '#' is a wall, ' ' and '.' are empty passage, 'S' and 'E' mark start and
// end, any other character is open terrain. Movement is 4-directional.
//
// Command:
//
//	mazesolver [options] <input_maze.txt> <dfs|bfs> [output_maze.txt]
//
//	go install github.com/LamaAT1/Maze-Solver/cmd/mazesolver@latest
package mazesolver
