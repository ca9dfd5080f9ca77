package grid

// Regions finds all 4-connected regions of open cells. Each region lists its
// cells in discovery order; regions are ordered by their first cell in
// row-major order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() []Path {
	if g.Empty() {
		return nil
	}
	seen := make([][]bool, g.Rows())
	for r := range seen {
		seen[r] = make([]bool, g.cols)
	}
	offsets := [4]Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	var regions []Path

	for r := range g.Cells {
		for c := 0; c < g.cols; c++ {
			if !g.IsOpen(r, c) || seen[r][c] {
				continue
			}
			// BFS to collect region
			seen[r][c] = true
			queue := Path{{Row: r, Col: c}}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					v := u.Add(d)
					if !g.IsOpen(v.Row, v.Col) || seen[v.Row][v.Col] {
						continue
					}
					seen[v.Row][v.Col] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// Connected reports whether a and b are open and lie in the same region.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsOpen(a.Row, a.Col) || !g.IsOpen(b.Row, b.Col) {
		return false
	}
	for _, region := range g.Regions() {
		if region.Contains(a) {
			return region.Contains(b)
		}
	}

	return false
}
