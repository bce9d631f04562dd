// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        string // UUID, assigned by SaveResult when empty
	GameID    string // Preset ID
	Rows      int
	Cols      int
	Moves     int
	Fusions   int
	MaxTile   int
	TileSum   int
	Outcome   string
	Seed      int64
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a preset.
type GameStats struct {
	GameID       string
	GamesCount   int
	BestTile     int
	AvgMaxTile   float64
	TotalMoves   int64
	TotalFusions int64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			fusions INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			tile_sum INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_game_id ON games(game_id);
		CREATE INDEX IF NOT EXISTS idx_games_best ON games(game_id, max_tile DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.GameID == "" {
		return "", errors.New("storage: result has no game id")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO games
		 (id, game_id, board_rows, board_cols, moves, fusions, max_tile, tile_sum, outcome, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Rows, r.Cols, r.Moves, r.Fusions, r.MaxTile, r.TileSum,
		r.Outcome, r.Seed, r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}

	return r.ID, nil
}

// RecentResults retrieves the most recent games, newest first.
// An empty gameID returns games of every preset.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, board_rows, board_cols, moves, fusions, max_tile, tile_sum, outcome, seed, created_at
		 FROM games
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Rows, &r.Cols,
			&r.Moves, &r.Fusions, &r.MaxTile, &r.TileSum,
			&r.Outcome, &r.Seed, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestTile returns the highest tile ever reached on the given preset.
// Returns 0 if no games exist.
func (s *Store) BestTile(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(max_tile) FROM games WHERE game_id = ?",
		gameID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best tile: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// Stats retrieves aggregated statistics for a specific preset.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(max_tile), 0), COALESCE(AVG(max_tile), 0),
		        COALESCE(SUM(moves), 0), COALESCE(SUM(fusions), 0), MAX(created_at)
		 FROM games WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.BestTile, &stats.AvgMaxTile,
		&stats.TotalMoves, &stats.TotalFusions, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(max_tile), AVG(max_tile), SUM(moves), SUM(fusions), MAX(created_at)
		 FROM games
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.BestTile, &gs.AvgMaxTile,
			&gs.TotalMoves, &gs.TotalFusions, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all games for the given preset.
// An empty gameID clears the whole history.
func (s *Store) ClearResults(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM games WHERE ? = '' OR game_id = ?", gameID, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared rows: %w", err)
	}
	return n, nil
}

const timeLayout = "2006-01-02 15:04:05.000"

// parseTime converts a scanned datetime, which the driver may return as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
