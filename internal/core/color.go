package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI colour.
type Color uint8

// Predefined colors. One per tetromino shape plus UI colours.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
	ColorBrightWhite
)
