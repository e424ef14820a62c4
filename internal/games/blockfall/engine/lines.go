package engine

// ClearLines removes every full row and prepends the same number of empty
// rows, keeping the height. It returns the new grid and the indices of the
// removed rows in ascending order.
func ClearLines(g Grid) (Grid, []int) {
	var cleared []int
	for y := range g.height {
		if g.RowFull(y) {
			cleared = append(cleared, y)
		}
	}
	if len(cleared) == 0 {
		return g, nil
	}

	out := NewGrid(g.width, g.height)
	dst := g.height - 1
	for y := g.height - 1; y >= 0; y-- {
		if g.RowFull(y) {
			continue
		}
		copy(out.cells[dst*g.width:(dst+1)*g.width], g.cells[y*g.width:(y+1)*g.width])
		dst--
	}
	return out, cleared
}

// Refill drops one debris cell per cleared row. For a cleared row r the cell
// is picked uniformly among the Empty cells of rows [buffer, r); an empty band
// is skipped.
func Refill(g Grid, cleared []int, buffer int, d Debris) (Grid, Debris) {
	if len(cleared) == 0 {
		return g, d
	}

	out := g.clone()
	var candidates []Coord
	for _, r := range cleared {
		candidates = candidates[:0]
		for y := max(buffer, 0); y < min(r, out.height); y++ {
			for x := range out.width {
				if out.At(C(x, y)) == Empty {
					candidates = append(candidates, C(x, y))
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}

		var i int
		i, d = d.IntN(len(candidates))
		pick := candidates[i]
		out.cells[pick.Y*out.width+pick.X] = Filled
	}
	return out, d
}
