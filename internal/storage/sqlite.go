// Package storage provides SQLite-based persistence for scores and replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Play is the judgement tally of one finished run. Seed and Digest allow a
// run to be regenerated and checked.
type Play struct {
	ID            int64
	GameID        string
	Seed          int64
	Score         int
	MaxCombo      int
	Accuracy      float64
	Fruits        int
	FruitMisses   int
	Droplets      int
	DropletMisses int
	TinyDroplets  int
	TinyMisses    int
	Bananas       int
	Autopilot     bool
	Digest        string
	CreatedAt     time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_combo INTEGER NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			fruits INTEGER NOT NULL DEFAULT 0,
			fruit_misses INTEGER NOT NULL DEFAULT 0,
			droplets INTEGER NOT NULL DEFAULT 0,
			droplet_misses INTEGER NOT NULL DEFAULT 0,
			tiny_droplets INTEGER NOT NULL DEFAULT 0,
			tiny_misses INTEGER NOT NULL DEFAULT 0,
			bananas INTEGER NOT NULL DEFAULT 0,
			autopilot INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_seed ON plays(game_id, seed);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game, best first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, or 0 if none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and plays for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM plays WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	return nil
}

// SavePlay records a finished run. Returns the ID of the inserted record.
func (s *Store) SavePlay(p Play) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO plays
		 (game_id, seed, score, max_combo, accuracy, fruits, fruit_misses, droplets,
		  droplet_misses, tiny_droplets, tiny_misses, bananas, autopilot, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.GameID, p.Seed, p.Score, p.MaxCombo, p.Accuracy, p.Fruits, p.FruitMisses, p.Droplets,
		p.DropletMisses, p.TinyDroplets, p.TinyMisses, p.Bananas, p.Autopilot, p.Digest,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save play: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// PlaysBySeed returns recorded runs of a map, oldest first.
func (s *Store) PlaysBySeed(gameID string, seed int64) ([]Play, error) {
	return s.queryPlays(
		`WHERE game_id = ? AND seed = ? ORDER BY id ASC`,
		gameID, seed,
	)
}

// RecentPlays returns the latest runs of a game, newest first.
func (s *Store) RecentPlays(gameID string, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryPlays(
		`WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
}

// TopPlays returns the best runs of a game ordered by score.
func (s *Store) TopPlays(gameID string, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryPlays(
		`WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryPlays(where string, args ...any) ([]Play, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, seed, score, max_combo, accuracy, fruits, fruit_misses, droplets,
		        droplet_misses, tiny_droplets, tiny_misses, bananas, autopilot, digest, created_at
		 FROM plays `+where,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var createdAt any
		if err := rows.Scan(
			&p.ID, &p.GameID, &p.Seed, &p.Score, &p.MaxCombo, &p.Accuracy, &p.Fruits, &p.FruitMisses, &p.Droplets,
			&p.DropletMisses, &p.TinyDroplets, &p.TinyMisses, &p.Bananas, &p.Autopilot, &p.Digest, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan play: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		plays = append(plays, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return plays, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestCombo  int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(MAX(max_combo), 0) FROM plays WHERE game_id = ?`,
		gameID,
	).Scan(&stats.BestCombo)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get best combo: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
