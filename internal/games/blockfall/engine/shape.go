// Package engine implements the falling-block rules as a pure state machine.
// It has no UI or I/O dependencies: every operation takes a State by value
// and returns the next one, so whole sessions can be replayed from a seed and
// an action list.
package engine

import "strings"

// Coord is a grid position. X is the column, Y the row (0 at the top).
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseShape parses a single-letter shape name (case-insensitive).
func ParseShape(name string) (Shape, bool) {
	name = strings.ToUpper(name)
	for s := range Shape(ShapeCount) {
		if name == s.String() {
			return s, true
		}
	}
	return 0, false
}

// catalog holds the pivot-relative offsets of each shape.
// The first offset of every entry is the pivot itself.
var catalog = [ShapeCount][4]Coord{
	ShapeI: {{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
	ShapeJ: {{0, 0}, {-1, -1}, {-1, 0}, {1, 0}},
	ShapeL: {{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeS: {{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
	ShapeT: {{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
	ShapeZ: {{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
}

// Offsets returns a copy of the shape's pivot-relative offsets.
func Offsets(s Shape) [4]Coord {
	return catalog[s]
}
