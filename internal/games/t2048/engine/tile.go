package engine

// unplaced marks a tile coordinate that has not been assigned to a cell yet.
const unplaced = -1

// Tile is an immutable numbered tile and its grid coordinate.
// A moved or merged tile is always a new Tile value, never a mutation.
type Tile struct {
	value int
	row   int
	col   int
}

// NewTile creates an unplaced tile with the given value.
func NewTile(value int) Tile {
	return Tile{value: value, row: unplaced, col: unplaced}
}

// newPlacedTile creates a tile located at (row, col).
func newPlacedTile(row, col, value int) Tile {
	return Tile{value: value, row: row, col: col}
}

// Value returns the tile number.
func (t Tile) Value() int {
	return t.value
}

// Row returns the tile row, or -1 when unplaced.
func (t Tile) Row() int {
	return t.row
}

// Col returns the tile column, or -1 when unplaced.
func (t Tile) Col() int {
	return t.col
}

// Placed reports whether the tile carries a grid coordinate.
func (t Tile) Placed() bool {
	return t.row != unplaced && t.col != unplaced
}

// isPowerOfTwo reports whether v is a power of two of at least 2.
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
