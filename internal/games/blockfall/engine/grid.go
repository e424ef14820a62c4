package engine

// Cell is the occupancy of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Filled
)

// String returns a readable name for the cell state.
func (c Cell) String() string {
	if c == Filled {
		return "Filled"
	}
	return "Empty"
}

// Grid is the playfield occupancy matrix.
// Grids are copy-on-write: methods that change occupancy return a new Grid
// and never touch the receiver's storage, so snapshots stay valid.
type Grid struct {
	width  int
	height int
	cells  []Cell // Row-major, len = width*height
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// InBounds reports whether c lies inside the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the cell at c. Out-of-bounds positions read as Empty.
func (g Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[c.Y*g.width+c.X]
}

// IsFree reports whether c is in bounds and Empty.
func (g Grid) IsFree(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Empty
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []Cell {
	row := make([]Cell, g.width)
	if y >= 0 && y < g.height {
		copy(row, g.cells[y*g.width:(y+1)*g.width])
	}
	return row
}

// RowFull reports whether every cell of row y is Filled.
func (g Grid) RowFull(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		if c != Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of Filled cells.
func (g Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Filled {
			n++
		}
	}
	return n
}

// With returns a copy of the grid with the given cells Filled.
// Out-of-bounds coordinates are ignored.
func (g Grid) With(cells ...Coord) Grid {
	out := g.clone()
	for _, c := range cells {
		if out.InBounds(c) {
			out.cells[c.Y*out.width+c.X] = Filled
		}
	}
	return out
}

// Equal reports whether both grids have the same size and occupancy.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g Grid) clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}
