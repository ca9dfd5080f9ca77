// Package grid provides parsing, openness queries, path marking and
// rendering for text mazes.
package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse builds a Grid from maze text. Lines are split on '\n', a single
// trailing '\r' is stripped from each line and a final newline does not
// produce an extra empty row. The first occurrence of each marker is kept;
// later occurrences are counted so Endpoints can reject them.
// Complexity: O(R×C) time and memory.
func Parse(text string) *Grid {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	g := &Grid{Cells: make([][]byte, len(lines))}
	for r, line := range lines {
		g.Cells[r] = []byte(strings.TrimSuffix(line, "\r"))
	}
	if len(g.Cells) > 0 {
		g.cols = len(g.Cells[0])
	}

	for r := range g.Cells {
		for c := 0; c < g.cols && c < len(g.Cells[r]); c++ {
			switch g.Cells[r][c] {
			case StartCh:
				if g.startSeen == 0 {
					g.start = Position{Row: r, Col: c}
				}
				g.startSeen++
			case EndCh:
				if g.endSeen == 0 {
					g.end = Position{Row: r, Col: c}
				}
				g.endSeen++
			}
		}
	}

	return g
}

// Load reads the maze file at path and parses it.
// Returns an error wrapping ErrRead if the file cannot be read.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}

	return Parse(string(data)), nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.Cells) }

// Cols returns the column count, measured from the first row.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid has zero rows or zero columns.
func (g *Grid) Empty() bool { return g.Rows() == 0 || g.cols == 0 }

// InBounds reports whether p addresses an existing cell.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.Cells) &&
		p.Col >= 0 && p.Col < g.cols && p.Col < len(g.Cells[p.Row])
}

// At returns the byte at p, or 0 if p is out of bounds.
func (g *Grid) At(p Position) byte {
	if !g.InBounds(p) {
		return 0
	}

	return g.Cells[p.Row][p.Col]
}

// IsOpen reports whether (row, col) is in bounds and not a wall.
// Start and end cells are open.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) bool {
	p := Position{Row: row, Col: col}

	return g.InBounds(p) && g.Cells[row][col] != Wall
}

// Start returns the first start marker position and whether one was found.
func (g *Grid) Start() (Position, bool) { return g.start, g.startSeen > 0 }

// End returns the first end marker position and whether one was found.
func (g *Grid) End() (Position, bool) { return g.end, g.endSeen > 0 }

// Endpoints returns the start and end positions of a well-formed maze.
// Returns ErrMissingStart, ErrMissingEnd or ErrDuplicateMarker otherwise.
func (g *Grid) Endpoints() (start, end Position, err error) {
	switch {
	case g.startSeen == 0:
		return start, end, ErrMissingStart
	case g.endSeen == 0:
		return start, end, ErrMissingEnd
	case g.startSeen > 1:
		return start, end, fmt.Errorf("%w: 'S' found %d times", ErrDuplicateMarker, g.startSeen)
	case g.endSeen > 1:
		return start, end, fmt.Errorf("%w: 'E' found %d times", ErrDuplicateMarker, g.endSeen)
	}

	return g.start, g.end, nil
}

// MarkPath overwrites every empty cell (' ' or '.') on path with mark.
// Walls, markers and out-of-bounds positions are left untouched, so
// marking twice with the same byte is a no-op.
// Complexity: O(len(path)).
func (g *Grid) MarkPath(path Path, mark byte) {
	for _, p := range path {
		if !g.InBounds(p) {
			continue
		}
		if c := g.Cells[p.Row][p.Col]; c == Space || c == Passage {
			g.Cells[p.Row][p.Col] = mark
		}
	}
}

// Render serializes the rows joined by '\n' with a trailing newline after
// the last row. A grid with no rows renders as "".
func (g *Grid) Render() string {
	var sb strings.Builder
	for _, row := range g.Cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (g *Grid) String() string { return g.Render() }

// WriteTo writes the rendered grid to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Render())

	return int64(n), err
}

// Save writes the rendered grid to the file at path, creating or
// truncating it. Returns an error wrapping ErrWrite on failure.
func (g *Grid) Save(path string) error {
	if err := os.WriteFile(path, []byte(g.Render()), 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWrite, path, err)
	}

	return nil
}

// Clone returns a deep copy of g, so one parse can be marked several times.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.Cells = make([][]byte, len(g.Cells))
	for r, row := range g.Cells {
		cp.Cells[r] = append([]byte(nil), row...)
	}

	return &cp
}
