package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func result(gameID string, maxTile, moves int, at time.Time) Result {
	return Result{
		GameID:    gameID,
		Rows:      4,
		Cols:      4,
		Moves:     moves,
		Fusions:   moves / 2,
		MaxTile:   maxTile,
		TileSum:   maxTile * 2,
		Outcome:   "stuck",
		Seed:      7,
		CreatedAt: at,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSaveResultAssignsUUID(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveResult(result("2048", 256, 120, time.Time{}))
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "id %q should be a UUID", id)

	results, err := store.RecentResults("2048", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].ID)
	assert.False(t, results[0].CreatedAt.IsZero())
}

func TestSaveResultRequiresGameID(t *testing.T) {
	store := openTemp(t)

	_, err := store.SaveResult(Result{Outcome: "quit"})
	assert.Error(t, err)
}

func TestRecentResultsOrder(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, tile := range []int{64, 512, 128} {
		_, err := store.SaveResult(result("2048", tile, 10*(i+1), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := store.SaveResult(result("2048_3x3", 32, 5, base))
	require.NoError(t, err)

	results, err := store.RecentResults("2048", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 128, results[0].MaxTile, "newest first")
	assert.Equal(t, 64, results[2].MaxTile)
	assert.True(t, results[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	saved := results[1]
	assert.Equal(t, "2048", saved.GameID)
	assert.Equal(t, 4, saved.Rows)
	assert.Equal(t, 20, saved.Moves)
	assert.Equal(t, 10, saved.Fusions)
	assert.Equal(t, 1024, saved.TileSum)
	assert.Equal(t, "stuck", saved.Outcome)
	assert.Equal(t, int64(7), saved.Seed)

	limited, err := store.RecentResults("2048", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := store.RecentResults("", 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestBestTile(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestTile("2048")
	require.NoError(t, err)
	assert.Zero(t, best)

	now := time.Now()
	for _, tile := range []int{256, 2048, 1024} {
		_, err := store.SaveResult(result("2048", tile, 100, now))
		require.NoError(t, err)
	}

	best, err = store.BestTile("2048")
	require.NoError(t, err)
	assert.Equal(t, 2048, best)
}

func TestStats(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	_, err := store.SaveResult(result("2048", 128, 40, base))
	require.NoError(t, err)
	_, err = store.SaveResult(result("2048", 512, 60, base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = store.SaveResult(result("2048_5x5", 1024, 300, base))
	require.NoError(t, err)

	stats, err := store.Stats("2048")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 512, stats.BestTile)
	assert.InDelta(t, 320.0, stats.AvgMaxTile, 0.001)
	assert.Equal(t, int64(100), stats.TotalMoves)
	assert.Equal(t, int64(50), stats.TotalFusions)
	assert.True(t, stats.LastPlayed.Equal(base.Add(time.Hour)))

	empty, err := store.Stats("2048_6x6")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	all, err := store.AllStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1024, all["2048_5x5"].BestTile)
	assert.Equal(t, 2, all["2048"].GamesCount)
}

func TestClearResults(t *testing.T) {
	store := openTemp(t)
	now := time.Now()

	for _, id := range []string{"2048", "2048", "2048_3x3"} {
		_, err := store.SaveResult(result(id, 64, 10, now))
		require.NoError(t, err)
	}

	n, err := store.ClearResults("2048")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	results, err := store.RecentResults("", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2048_3x3", results[0].GameID)

	n, err = store.ClearResults("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	assert.True(t, parseTime(want).Equal(want))
	assert.True(t, parseTime("2026-03-04 05:06:07").Equal(want))
	assert.True(t, parseTime("2026-03-04 05:06:07.000").Equal(want))
	assert.True(t, parseTime(nil).IsZero())
	assert.True(t, parseTime("garbage").IsZero())
}
