package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// DefaultRows and DefaultCols give the classic 4x4 board.
const (
	DefaultRows = 4
	DefaultCols = 4
)

// Rand is the random source a Board draws spawn values and cells from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Board owns a rows x cols grid of optional tiles.
type Board struct {
	rows int
	cols int
	grid [][]*Tile
	rng  Rand
}

// New creates an empty board. A nil rng is replaced with a time-seeded one.
func New(rows, cols int, rng Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Board{
		rows: rows,
		cols: cols,
		grid: newGrid(rows, cols),
		rng:  rng,
	}, nil
}

// NewSeeded creates an empty board whose spawns are reproducible for a seed.
func NewSeeded(rows, cols int, seed int64) (*Board, error) {
	return New(rows, cols, rand.New(rand.NewSource(seed)))
}

func newGrid(rows, cols int) [][]*Tile {
	grid := make([][]*Tile, rows)
	for r := range grid {
		grid[r] = make([]*Tile, cols)
	}
	return grid
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the tile at (row, col). The second result is false for an
// empty or out-of-range cell.
func (b *Board) At(row, col int) (Tile, bool) {
	if !b.inBounds(row, col) || b.grid[row][col] == nil {
		return Tile{}, false
	}
	return *b.grid[row][col], true
}

// Tiles returns every tile in row-major order.
func (b *Board) Tiles() []Tile {
	var tiles []Tile
	for r := range b.rows {
		for c := range b.cols {
			if t := b.grid[r][c]; t != nil {
				tiles = append(tiles, *t)
			}
		}
	}
	return tiles
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	return len(b.Tiles())
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	sum := 0
	for _, t := range b.Tiles() {
		sum += t.value
	}
	return sum
}

// MaxTile returns the highest tile value, or 0 on an empty board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.Tiles() {
		if t.value > maxVal {
			maxVal = t.value
		}
	}
	return maxVal
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	return len(b.emptyCells()) == 0
}

// Values returns a copy of the grid as plain numbers, 0 for empty cells.
func (b *Board) Values() [][]int {
	values := make([][]int, b.rows)
	for r := range b.rows {
		values[r] = make([]int, b.cols)
		for c := range b.cols {
			if t := b.grid[r][c]; t != nil {
				values[r][c] = t.value
			}
		}
	}
	return values
}

// Place puts a tile with the given value on an empty cell without emitting
// notifications. It is meant for setting up a layout before play.
func (b *Board) Place(row, col, value int) error {
	if !b.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	if !isPowerOfTwo(value) {
		return fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	if b.grid[row][col] != nil {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}

	t := newPlacedTile(row, col, value)
	b.grid[row][col] = &t
	return nil
}

// clear empties every cell.
func (b *Board) clear() {
	for r := range b.rows {
		for c := range b.cols {
			b.grid[r][c] = nil
		}
	}
}

// Reset clears the board and spawns two tiles.
// Returns Reset followed by one Spawn per placed tile.
func (b *Board) Reset() Batch {
	b.clear()

	batch := Batch{Reset{}}
	for range 2 {
		if t, ok := b.spawn(); ok {
			batch = append(batch, Spawn{Tile: t})
		}
	}
	return batch
}

// String renders the grid as rows of numbers with '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if t := b.grid[r][c]; t != nil {
				sb.WriteString(strconv.Itoa(t.value))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
