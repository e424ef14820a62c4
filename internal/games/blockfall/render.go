package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellWidth  = 2  // Screen columns per grid cell
	panelWidth = 16 // Side panel width
	panelGap   = 2  // Columns between board and panel
)

// Visual characters for rendering
const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

// shapeColors gives every tetromino its own colour.
var shapeColors = [engine.ShapeCount]core.Color{
	engine.ShapeI: core.ColorCyan,
	engine.ShapeJ: core.ColorBlue,
	engine.ShapeL: core.ColorOrange,
	engine.ShapeO: core.ColorYellow,
	engine.ShapeS: core.ColorGreen,
	engine.ShapeT: core.ColorMagenta,
	engine.ShapeZ: core.ColorRed,
}

// ShapeColor returns the display colour of a shape.
func ShapeColor(s engine.Shape) core.Color {
	if int(s) < len(shapeColors) {
		return shapeColors[s]
	}
	return core.ColorDefault
}

// boardSize returns the board box dimensions including its border.
func (g *Game) boardSize() (int, int) {
	rules := g.Rules()
	return rules.Width*cellWidth + 2, rules.Height + 2
}

// minSize returns the smallest screen that fits board and panel.
func (g *Game) minSize() (int, int) {
	bw, bh := g.boardSize()
	return bw + panelGap + panelWidth, max(bh, 12)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	minW, minH := g.minSize()
	area := dst.Bounds().CenterIn(minW, minH)
	bw, bh := g.boardSize()
	board := core.NewRect(area.X, area.Y, bw, bh)

	g.renderBoard(dst, board)
	g.renderPanel(dst, board.Right()+panelGap, board.Y)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := g.minSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderBoard draws the grid, the ghost piece and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)
	inner := board.Inset(1)
	grid := g.state.Grid

	for y := range grid.Height() {
		for x := range grid.Width() {
			px := inner.X + x*cellWidth
			py := inner.Y + y
			if grid.At(engine.C(x, y)) == engine.Filled {
				drawCell(dst, px, py, blockChar, core.ColorBrightWhite)
			} else {
				dst.SetColored(px+1, py, emptyChar, core.ColorGray)
			}
		}
	}

	if g.state.Ended {
		return
	}

	current := g.state.Current
	ghost := engine.Translate(current, 0, engine.HardDropDistance(current, grid))
	color := ShapeColor(current.Shape)

	for _, c := range ghost.Cells {
		if !current.Occupies(c) && grid.InBounds(c) {
			drawCell(dst, inner.X+c.X*cellWidth, inner.Y+c.Y, ghostChar, color)
		}
	}
	for _, c := range current.Cells {
		if grid.InBounds(c) {
			drawCell(dst, inner.X+c.X*cellWidth, inner.Y+c.Y, blockChar, color)
		}
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderPanel draws title, next piece preview and counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "BLOCKFALL", core.ColorCyan)
	if g.pivot {
		dst.DrawTextColored(x, y+1, "square pivot", core.ColorGray)
	}

	dst.DrawText(x, y+3, "NEXT")
	g.renderPreview(dst, x, y+4, g.state.Next.Shape)

	dst.DrawText(x, y+7, fmt.Sprintf("SCORE %6d", g.state.Score))
	dst.DrawText(x, y+8, fmt.Sprintf("LEVEL %6d", g.state.Level))
	dst.DrawText(x, y+9, fmt.Sprintf("BEST  %6d", g.state.HighScore))
}

// renderPreview draws a shape's offsets normalised to (x, y).
func (g *Game) renderPreview(dst *core.Screen, x, y int, s engine.Shape) {
	offsets := engine.Offsets(s)
	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets[1:] {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
	}

	for _, o := range offsets {
		drawCell(dst, x+(o.X-minX)*cellWidth, y+(o.Y-minY), blockChar, ShapeColor(s))
	}
}

// renderOverlays draws pause and game over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.state.Ended:
		drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", g.state.Score), "R to restart")
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "P to resume")
	}
}

// drawOverlay draws a centered text box inside area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenterIn(maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorDefault)

	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}
