package engine

// CheckGameEnd reports whether any cell of the top row is Filled.
func CheckGameEnd(g Grid) bool {
	for x := range g.Width() {
		if g.At(C(x, 0)) == Filled {
			return true
		}
	}
	return false
}

// addClears credits cleared rows to score and level.
// Level is a running total of cleared rows.
func addClears(s State, cleared int) State {
	s.Score += cleared
	s.Level += cleared
	s.HighScore = max(s.HighScore, s.Score)
	return s
}
