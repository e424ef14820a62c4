package engine

// Piece is a tetromino placed on the grid.
// Cells[0] is the rotation pivot.
type Piece struct {
	Shape Shape
	Cells [4]Coord
}

// Pivot returns the rotation anchor.
func (p Piece) Pivot() Coord {
	return p.Cells[0]
}

// Fits reports whether every cell is in bounds and over an Empty cell.
func (p Piece) Fits(g Grid) bool {
	for _, c := range p.Cells {
		if !g.IsFree(c) {
			return false
		}
	}
	return true
}

// Occupies reports whether the piece covers c.
func (p Piece) Occupies(c Coord) bool {
	for _, pc := range p.Cells {
		if pc == c {
			return true
		}
	}
	return false
}

// Translate shifts every cell by (dx, dy). No validation is done.
func Translate(p Piece, dx, dy int) Piece {
	for i, c := range p.Cells {
		p.Cells[i] = c.Add(dx, dy)
	}
	return p
}

// Spawn places a shape at its spawn position for a grid of the given width:
// centred horizontally, topmost cell on row 0.
func Spawn(s Shape, width int) Piece {
	offsets := Offsets(s)

	minY := offsets[0].Y
	for _, o := range offsets[1:] {
		minY = min(minY, o.Y)
	}

	p := Piece{Shape: s}
	for i, o := range offsets {
		p.Cells[i] = C(width/2+o.X, o.Y-minY)
	}
	return p
}

// Generate draws one value from the sequence and spawns the matching shape.
// The spawn cells are not checked against the grid; an occupied spawn shows
// up as game over once the piece settles.
func Generate(seq Sequence, width int) (Piece, Sequence) {
	v, seq := seq.Next()
	shape := Shape(int(v * ShapeCount))
	return Spawn(shape, width), seq
}
