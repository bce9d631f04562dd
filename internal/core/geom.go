// Package core provides the platform types shared by the game and the
// terminal layer: screen buffer, colors, input actions and runtime config.
// It has no Bubble Tea dependency so game logic stays testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	cx, cy := r.Center()
	return NewRect(cx-w/2, cy-h/2, w, h)
}

// Grid lays out Rows x Cols cells of CellW x CellH characters. Neighbouring
// cells share one border line, so a cell's size counts only its top and
// left border. (X, Y) is the top-left corner of the outer border.
type Grid struct {
	X, Y         int
	Rows, Cols   int
	CellW, CellH int
}

// Bounds returns the area covered by the grid, outer borders included.
func (g Grid) Bounds() Rect {
	return NewRect(g.X, g.Y, g.Cols*g.CellW+1, g.Rows*g.CellH+1)
}

// Corner returns the border corner above and left of cell (row, col).
// row == Rows or col == Cols address the closing border.
func (g Grid) Corner(row, col int) (x, y int) {
	return g.X + col*g.CellW, g.Y + row*g.CellH
}

// Inner returns the interior of cell (row, col), borders excluded.
func (g Grid) Inner(row, col int) Rect {
	x, y := g.Corner(row, col)
	return NewRect(x+1, y+1, g.CellW-1, g.CellH-1)
}

// Junction returns the box-drawing rune where border lines meet at
// corner (row, col).
func (g Grid) Junction(row, col int) rune {
	top, bottom := row == 0, row == g.Rows
	left, right := col == 0, col == g.Cols

	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	default:
		return '┼'
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
