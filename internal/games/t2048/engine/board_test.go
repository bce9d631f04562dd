package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRand wraps a seeded source and counts draws.
type countingRand struct {
	rng   *rand.Rand
	calls int
}

func newCountingRand(seed int64) *countingRand {
	return &countingRand{rng: rand.New(rand.NewSource(seed))}
}

func (c *countingRand) Intn(n int) int {
	c.calls++
	return c.rng.Intn(n)
}

// fixedRand returns queued values in order, then zeros.
type fixedRand struct {
	values []int
}

func (f *fixedRand) Intn(n int) int {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[0]
	f.values = f.values[1:]
	return v % n
}

// newLayout builds a board from a value matrix, 0 meaning empty.
func newLayout(t *testing.T, layout [][]int) *Board {
	t.Helper()

	b, err := NewSeeded(len(layout), len(layout[0]), 1)
	require.NoError(t, err)
	for r, row := range layout {
		for c, v := range row {
			if v != 0 {
				require.NoError(t, b.Place(r, c, v))
			}
		}
	}
	return b
}

func assertGridInvariant(t *testing.T, b *Board) {
	t.Helper()
	for r := range b.Rows() {
		for c := range b.Cols() {
			if tile, ok := b.At(r, c); ok {
				assert.Equal(t, r, tile.Row(), "tile row at (%d,%d)", r, c)
				assert.Equal(t, c, tile.Col(), "tile col at (%d,%d)", r, c)
				assert.True(t, isPowerOfTwo(tile.Value()), "tile value %d", tile.Value())
			}
		}
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"negative rows", -1, 4},
		{"negative cols", 4, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.rows, tt.cols, nil)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestNewDefaultsRand(t *testing.T) {
	b, err := New(DefaultRows, DefaultCols, nil)
	require.NoError(t, err)

	batch := b.Reset()
	assert.Len(t, batch, 3)
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	b, err := NewSeeded(4, 4, 42)
	require.NoError(t, err)

	batch := b.Reset()

	require.Equal(t, []Kind{KindReset, KindSpawn, KindSpawn}, batch.Kinds())
	tiles := b.Tiles()
	require.Len(t, tiles, 2)
	for _, tile := range tiles {
		assert.Contains(t, []int{2, 4}, tile.Value())
	}
	assert.False(t, tiles[0].Row() == tiles[1].Row() && tiles[0].Col() == tiles[1].Col(),
		"spawned tiles must occupy distinct cells")

	spawned := batch.Spawned()
	require.Len(t, spawned, 2)
	for _, s := range spawned {
		got, ok := b.At(s.Row(), s.Col())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestResetIsRepeatable(t *testing.T) {
	b, err := NewSeeded(4, 4, 7)
	require.NoError(t, err)

	b.Reset()
	require.NoError(t, b.Place(3, 3, 1024))
	b.Reset()

	assert.Equal(t, 2, b.Count())
	assert.Less(t, b.MaxTile(), 8, "no tile from the previous game may survive")
}

func TestResetOnSingleCellBoard(t *testing.T) {
	b, err := NewSeeded(1, 1, 3)
	require.NoError(t, err)

	batch := b.Reset()

	assert.Equal(t, []Kind{KindReset, KindSpawn}, batch.Kinds())
	assert.True(t, b.IsFull())
}

func TestDeterministicSeed(t *testing.T) {
	b1, err := NewSeeded(4, 4, 12345)
	require.NoError(t, err)
	b2, err := NewSeeded(4, 4, 12345)
	require.NoError(t, err)

	assert.Equal(t, b1.Reset(), b2.Reset())
	for _, dir := range []Direction{DirLeft, DirDown, DirRight, DirUp, DirLeft} {
		batch1, err := b1.Move(dir)
		require.NoError(t, err)
		batch2, err := b2.Move(dir)
		require.NoError(t, err)
		assert.Equal(t, batch1, batch2)
	}
	assert.Equal(t, b1.Values(), b2.Values())
}

func TestSpawnValueDistribution(t *testing.T) {
	// Value draw comes first: < 10 gives a 4.
	b, err := New(2, 2, &fixedRand{values: []int{9, 3, 10, 0}})
	require.NoError(t, err)

	batch, ok := b.SpawnTile()
	require.True(t, ok)
	require.Len(t, batch, 1)
	four := batch[0].(Spawn).Tile
	assert.Equal(t, 4, four.Value())
	assert.Equal(t, 1, four.Row())
	assert.Equal(t, 1, four.Col())

	batch, ok = b.SpawnTile()
	require.True(t, ok)
	two := batch[0].(Spawn).Tile
	assert.Equal(t, 2, two.Value())
	assert.Equal(t, 0, two.Row())
	assert.Equal(t, 0, two.Col())
}

func TestSpawnOnFullBoard(t *testing.T) {
	rng := newCountingRand(1)
	b, err := New(1, 2, rng)
	require.NoError(t, err)
	require.NoError(t, b.Place(0, 0, 2))
	require.NoError(t, b.Place(0, 1, 4))

	batch, ok := b.SpawnTile()

	assert.False(t, ok)
	assert.Empty(t, batch)
	assert.Zero(t, rng.calls, "a full board must not draw randomness")
}

func TestPlaceValidation(t *testing.T) {
	b, err := NewSeeded(2, 3, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, b.Place(2, 0, 2), ErrOutOfBounds)
	assert.ErrorIs(t, b.Place(0, -1, 2), ErrOutOfBounds)
	assert.ErrorIs(t, b.Place(0, 0, 3), ErrInvalidValue)
	assert.ErrorIs(t, b.Place(0, 0, 1), ErrInvalidValue)
	require.NoError(t, b.Place(0, 0, 2))
	assert.ErrorIs(t, b.Place(0, 0, 4), ErrCellOccupied)
}

func TestBoardQueries(t *testing.T) {
	b := newLayout(t, [][]int{
		{2, 0, 8},
		{0, 64, 0},
	})

	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, 3, b.Cols())
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, 74, b.Sum())
	assert.Equal(t, 64, b.MaxTile())
	assert.False(t, b.IsFull())
	assert.Equal(t, [][]int{{2, 0, 8}, {0, 64, 0}}, b.Values())
	assert.Equal(t, "2 . 8\n. 64 .", b.String())

	_, ok := b.At(0, 1)
	assert.False(t, ok)
	_, ok = b.At(5, 5)
	assert.False(t, ok)
}

func TestTileUnplaced(t *testing.T) {
	tile := NewTile(8)

	assert.Equal(t, 8, tile.Value())
	assert.Equal(t, -1, tile.Row())
	assert.Equal(t, -1, tile.Col())
	assert.False(t, tile.Placed())
}
