package engine

// CheckCollision reports whether the piece is resting: some cell sits on
// the bottom row or directly above a Filled cell.
func CheckCollision(p Piece, g Grid) bool {
	for _, c := range p.Cells {
		if c.Y >= g.Height()-1 {
			return true
		}
		if g.At(c.Add(0, 1)) == Filled {
			return true
		}
	}
	return false
}

// SoftTick applies one step of gravity. A piece that is not resting moves
// down a row; a resting piece settles. The second result reports a settle.
func SoftTick(s State) (State, bool) {
	if !CheckCollision(s.Current, s.Grid) {
		s.Current = Translate(s.Current, 0, 1)
		return s, false
	}
	return settle(s), true
}

// settle merges the current piece into the grid and promotes the next one.
func settle(s State) State {
	s.Grid = s.Grid.With(s.Current.Cells[:]...)
	s.Current = s.Next
	s.Next, s.Sequence = Generate(s.Sequence, s.Rules.Width)
	return s
}

// HardDropDistance counts how many rows the piece can fall before it rests.
// The loop is bounded by the grid height.
func HardDropDistance(p Piece, g Grid) int {
	d := 0
	for d < g.Height() && !CheckCollision(Translate(p, 0, d), g) {
		d++
	}
	return d
}

// HardDrop moves the current piece to its resting row in one step.
// The piece settles on the following tick.
func HardDrop(s State) State {
	s.Current = Translate(s.Current, 0, HardDropDistance(s.Current, s.Grid))
	return s
}
