package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// layout returns the board grid with its top-left border at (x, y).
func (g *Game) layout(x, y int) core.Grid {
	return core.Grid{
		X:     x,
		Y:     y,
		Rows:  g.preset.Rows,
		Cols:  g.preset.Cols,
		CellW: cellWidth,
		CellH: cellHeight,
	}
}

// boardSize returns the grid footprint in characters, borders included.
func (g *Game) boardSize() (w, h int) {
	b := g.layout(0, 0).Bounds()
	return b.W, b.H
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, _ := g.boardSize()
	grid := g.layout((g.screenW-boardW)/2, hudHeight+1)

	g.renderHUD(dst, grid.Bounds())
	dst.DrawGrid(grid, core.ColorGray)
	g.renderTiles(dst, grid)
	g.renderOverlays(dst, grid.Bounds())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.boardSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w+2, h+hudHeight+2))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, move count and max tile above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.preset.Title
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(board.X, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxTile := g.board.MaxTile()
	maxStr := fmt.Sprintf("Max: %d", maxTile)
	dst.DrawTextColored(max(board.Right()-len(maxStr), board.X), 1, maxStr, core.TileColor(maxTile))

	info := fmt.Sprintf("%dx%d  merges: %d", g.preset.Rows, g.preset.Cols, g.fusions)
	dst.DrawTextColored(board.X+(board.W-len(info))/2, 2, info, core.ColorGray)
}

// renderTiles draws settled tiles and any in-flight animation.
func (g *Game) renderTiles(dst *core.Screen, grid core.Grid) {
	for _, t := range g.board.Tiles() {
		if g.anim.hidden[cell{t.Row(), t.Col()}] {
			continue
		}
		drawValue(dst, grid, float64(t.Row()), float64(t.Col()), t.Value())
	}

	switch g.anim.phase {
	case PhaseSlide:
		for at, v := range g.anim.ghosts {
			drawValue(dst, grid, float64(at.row), float64(at.col), v)
		}
		for i := range g.anim.slides {
			a := &g.anim.slides[i]
			row, col := a.interpolatePosition()
			drawValue(dst, grid, row, col, a.Value)
		}
	case PhasePop:
		if g.anim.popProgress() >= 0.5 {
			return
		}
		// Spawned tiles start as a dot and grow into their number.
		for _, t := range g.anim.popped {
			in := grid.Inner(t.Row(), t.Col())
			dst.DrawRect(in, ' ', core.ColorDefault)
			cx, cy := in.Center()
			dst.SetColored(cx, cy, '·', core.TileColor(t.Value()))
		}
	}
}

// drawValue writes a tile number centered in the cell at (row, col).
// Fractional positions are rounded to the nearest cell.
func drawValue(dst *core.Screen, grid core.Grid, row, col float64, value int) {
	in := grid.Inner(int(math.Round(row)), int(math.Round(col)))

	s := strconv.Itoa(value)
	x := in.X + max((in.W-len(s))/2, 0)
	dst.DrawTextColored(x, in.Y+in.H/2, s, core.TileColor(value))
}

// renderOverlays draws pause and game-over overlays over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		reason := "Board full"
		if g.outcome == OutcomeStuck {
			reason = "No moves left"
		}
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		drawOverlay(dst, board, "GAME OVER", reason, maxStr, "Press R to restart")
	}
}

// drawOverlay draws a framed text box centered on area. The first line
// is the heading.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := area.Centered(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | R: Restart | Q: Quit"
}
