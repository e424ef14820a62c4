package engine

// Direction is a horizontal move or rotation sense.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

func (d Direction) dx() int {
	if d == Right {
		return 1
	}
	return -1
}

// CanTranslate reports whether the current piece can shift one column in dir.
func CanTranslate(s State, dir Direction) bool {
	return Translate(s.Current, dir.dx(), 0).Fits(s.Grid)
}

// Move shifts the current piece one column, or returns s unchanged if blocked.
func Move(s State, dir Direction) State {
	if !CanTranslate(s, dir) {
		return s
	}
	s.Current = Translate(s.Current, dir.dx(), 0)
	return s
}

// RotatePiece turns the piece a quarter around its pivot without validation.
//
//	left:  x' = px - py + sy, y' = py + px - sx
//	right: x' = px + py - sy, y' = py - px + sx
func RotatePiece(p Piece, dir Direction) Piece {
	px, py := p.Pivot().X, p.Pivot().Y
	for i, c := range p.Cells {
		if dir == Left {
			p.Cells[i] = C(px-py+c.Y, py+px-c.X)
		} else {
			p.Cells[i] = C(px+py-c.Y, py-px+c.X)
		}
	}
	return p
}

// Rotate turns the current piece if the result fits the grid.
// The O piece is left alone unless the rules ask for square rotation.
func Rotate(s State, dir Direction) State {
	if s.Current.Shape == ShapeO && !s.Rules.RotateSquare {
		return s
	}
	rotated := RotatePiece(s.Current, dir)
	if !rotated.Fits(s.Grid) {
		return s
	}
	s.Current = rotated
	return s
}
