package engine

import (
	"fmt"
	"strings"
)

// Text board symbols.
const (
	RuneEmpty   = '.'
	RuneFilled  = '#'
	RuneCurrent = '@'
)

// FormatGrid renders the grid as text, one line per row.
func FormatGrid(g Grid) string {
	return format(g, nil)
}

// FormatState renders the grid with the current piece drawn on top.
func FormatState(s State) string {
	return format(s.Grid, &s.Current)
}

func format(g Grid, p *Piece) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.Width() {
			c := C(x, y)
			switch {
			case p != nil && p.Occupies(c):
				sb.WriteRune(RuneCurrent)
			case g.At(c) == Filled:
				sb.WriteRune(RuneFilled)
			default:
				sb.WriteRune(RuneEmpty)
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from text rows. '#' is Filled and '.' is Empty.
// All rows must have the same width.
func ParseGrid(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("engine: empty board")
	}

	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("engine: row %d has width %d, expected %d", y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case RuneFilled:
				g.cells[y*width+x] = Filled
			case RuneEmpty:
			default:
				return Grid{}, fmt.Errorf("engine: row %d: unexpected %q at column %d", y, r, x)
			}
		}
	}
	return g, nil
}
