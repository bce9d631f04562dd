package engine

import "fmt"

// line describes how one direction walks the grid. Every direction is
// scanned as if it were Left: lanes are the independent rows or columns,
// and position 0 of a lane is the edge tiles slide toward.
type line struct {
	lanes  int
	length int
	at     func(lane, pos int) (row, col int)
}

// lineFor returns the scan geometry for dir. Each direction clamps to the
// far edge of its own axis, so non-square boards slide correctly.
func (b *Board) lineFor(dir Direction) line {
	rows, cols := b.rows, b.cols

	switch dir {
	case DirUp:
		return line{lanes: cols, length: rows, at: func(lane, pos int) (int, int) {
			return pos, lane
		}}
	case DirRight:
		return line{lanes: rows, length: cols, at: func(lane, pos int) (int, int) {
			return lane, cols - 1 - pos
		}}
	case DirDown:
		return line{lanes: cols, length: rows, at: func(lane, pos int) (int, int) {
			return rows - 1 - pos, lane
		}}
	default:
		return line{lanes: rows, length: cols, at: func(lane, pos int) (int, int) {
			return lane, pos
		}}
	}
}

// slide runs one directional scan over grid, mutating it in place.
// Later positions see the grid as changed by earlier ones, so a tile
// produced by a merge can merge again within the same scan.
// Move and Fusion notifications are appended to out when it is non-nil.
// Returns whether any tile changed position.
func slide(grid [][]*Tile, l line, out *Batch) bool {
	moved := false

	for lane := range l.lanes {
		for pos := 1; pos < l.length; pos++ {
			srcRow, srcCol := l.at(lane, pos)
			tile := grid[srcRow][srcCol]
			if tile == nil {
				continue
			}

			value := tile.value
			dst := pos - 1
			for {
				r, c := l.at(lane, dst)
				if next := grid[r][c]; next != nil {
					if next.value != tile.value {
						dst++
					} else {
						value = 2 * tile.value
					}
					break
				}

				dst--
				if dst < 0 {
					dst = 0
					break
				}
			}

			if dst == pos {
				continue
			}
			moved = true

			dstRow, dstCol := l.at(lane, dst)
			placed := newPlacedTile(dstRow, dstCol, value)
			grid[dstRow][dstCol] = &placed
			grid[srcRow][srcCol] = nil

			if out == nil {
				continue
			}
			if value > tile.value {
				*out = append(*out, Fusion{Tile: placed, SrcRow: srcRow, SrcCol: srcCol, DstRow: dstRow, DstCol: dstCol})
			} else {
				*out = append(*out, Move{Tile: placed, SrcRow: srcRow, SrcCol: srcCol, DstRow: dstRow, DstCol: dstCol})
			}
		}
	}

	return moved
}

// Move slides every tile toward dir, merging equal neighbours.
// The batch holds Move/Fusion in scan order, one MoveEnd, then a Spawn
// when the move was effective, or GameOver when no cell was left to
// spawn into. An unknown direction returns ErrInvalidDirection and leaves
// the board untouched.
func (b *Board) Move(dir Direction) (Batch, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	var batch Batch
	moved := slide(b.grid, b.lineFor(dir), &batch)
	batch = append(batch, MoveEnd{Moved: moved})

	if !moved {
		return batch, nil
	}

	if t, ok := b.spawn(); ok {
		batch = append(batch, Spawn{Tile: t})
	} else {
		batch = append(batch, GameOver{})
	}
	return batch, nil
}

// CanMove reports whether moving toward dir would change the board.
// It works on a scratch copy and consumes no randomness.
func (b *Board) CanMove(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	scratch := newGrid(b.rows, b.cols)
	for r := range b.rows {
		copy(scratch[r], b.grid[r])
	}
	return slide(scratch, b.lineFor(dir), nil)
}

// HasMoves reports whether any direction would change the board.
// A full board with no equal neighbours has none; the engine still only
// signals GameOver through Move, so callers use this as a hint.
func (b *Board) HasMoves() bool {
	for _, dir := range Directions() {
		if b.CanMove(dir) {
			return true
		}
	}
	return false
}
