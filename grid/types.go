// Package grid defines the core types and sentinel errors shared by the
// maze traversal packages.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrMissingStart indicates no start marker was found in bounds.
	ErrMissingStart = errors.New("grid: start marker 'S' not found")
	// ErrMissingEnd indicates no end marker was found in bounds.
	ErrMissingEnd = errors.New("grid: end marker 'E' not found")
	// ErrDuplicateMarker indicates a start or end marker appears more than once.
	ErrDuplicateMarker = errors.New("grid: marker appears more than once")
	// ErrRead wraps failures reading a maze file.
	ErrRead = errors.New("grid: cannot read maze")
	// ErrWrite wraps failures writing a maze file.
	ErrWrite = errors.New("grid: cannot write maze")
)

// Recognized cell bytes.
const (
	Wall    = '#'
	Space   = ' '
	Passage = '.'
	StartCh = 'S'
	EndCh   = 'E'
)

// Position identifies one cell by row and column. It is comparable and
// can be used directly as a map key.
type Position struct {
	Row, Col int
}

// Add returns p shifted by the offset d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Path is an ordered sequence of positions from start to end inclusive.
// An empty Path means no route was found.
type Path []Position

// Contains reports whether p appears in the path.
func (pa Path) Contains(p Position) bool {
	for _, q := range pa {
		if q == p {
			return true
		}
	}

	return false
}

// Valid reports whether pa is a well-formed route through g from start to
// end: it starts and ends at the given cells, every cell is open, consecutive
// cells are 4-adjacent and no cell repeats. An empty path is never valid.
func (pa Path) Valid(g *Grid, start, end Position) bool {
	if len(pa) == 0 || pa[0] != start || pa[len(pa)-1] != end {
		return false
	}
	seen := make(map[Position]struct{}, len(pa))
	for i, p := range pa {
		if !g.IsOpen(p.Row, p.Col) {
			return false
		}
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
		if i > 0 && manhattan(pa[i-1], p) != 1 {
			return false
		}
	}

	return true
}

func manhattan(a, b Position) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Grid holds a parsed maze. Cells[r][c] is the byte at row r, column c;
// rows keep the raw input bytes, so any encoding renders back unchanged.
// Cols is taken from the first row; shorter rows simply have fewer open cells.
type Grid struct {
	Cells [][]byte

	cols       int
	start, end Position
	startSeen  int
	endSeen    int
}
