package engine

// fourPercent is the chance, out of 100, that a spawned tile is a 4.
const fourPercent = 10

// cell is a grid coordinate.
type cell struct {
	row, col int
}

// emptyCells returns coordinates of all empty cells in row-major order.
func (b *Board) emptyCells() []cell {
	var cells []cell
	for r := range b.rows {
		for c := range b.cols {
			if b.grid[r][c] == nil {
				cells = append(cells, cell{r, c})
			}
		}
	}
	return cells
}

// spawn places a 2 (90%) or a 4 (10%) on a uniformly chosen empty cell.
// Returns false without consuming randomness when the board is full.
func (b *Board) spawn() (Tile, bool) {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	value := 2
	if b.rng.Intn(100) < fourPercent {
		value = 4
	}

	at := empty[b.rng.Intn(len(empty))]
	t := newPlacedTile(at.row, at.col, value)
	b.grid[at.row][at.col] = &t
	return t, true
}

// SpawnTile places one new tile. It returns a batch holding the Spawn
// notification, or an empty batch and false when the board is full.
func (b *Board) SpawnTile() (Batch, bool) {
	t, ok := b.spawn()
	if !ok {
		return nil, false
	}
	return Batch{Spawn{Tile: t}}, true
}
