// Package storage keeps the session scoreboard in an in-memory SQLite
// database (pure-Go modernc.org/sqlite, no CGO). Nothing touches the disk:
// the board lives exactly as long as the process that opened it.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// defaultLimit is used when a query asks for a non-positive row count.
const defaultLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS rounds (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT    NOT NULL UNIQUE,
	game_id    TEXT    NOT NULL,
	score      INTEGER NOT NULL,
	difficulty TEXT    NOT NULL DEFAULT '',
	player     TEXT    NOT NULL DEFAULT '',
	ended_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_rounds_board ON rounds(game_id, difficulty, score DESC);
`

// Store is the session scoreboard. It is safe for concurrent use; SSH
// sessions share one instance.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished round.
type ScoreEntry struct {
	ID         string // Random UUID
	GameID     string
	Score      int
	Difficulty string
	Player     string
	CreatedAt  time.Time
}

// Filter selects rows for Top. An empty Difficulty matches every preset.
type Filter struct {
	GameID     string
	Difficulty string
	Limit      int
}

// Stats summarises every recorded round of one game.
type Stats struct {
	Rounds  int
	Best    int
	Average float64
}

// Open creates an empty in-memory scoreboard.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Each connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database, discarding every score.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished round and returns its ID.
func (s *Store) SaveScore(gameID string, score int, difficulty, player string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds (id, game_id, score, difficulty, player, ended_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, gameID, score, difficulty, player, time.Now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score for %s: %w", gameID, err)
	}
	return id, nil
}

// TopScores returns the best rounds of a game across all difficulties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.Top(Filter{GameID: gameID, Limit: limit})
}

// Top returns the rounds matching f, best first. Equal scores keep the
// order they were recorded in.
func (s *Store) Top(f Filter) ([]ScoreEntry, error) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}

	var (
		where = []string{"game_id = ?"}
		args  = []any{f.GameID}
	)
	if f.Difficulty != "" {
		where = append(where, "difficulty = ?")
		args = append(args, f.Difficulty)
	}
	args = append(args, f.Limit)

	query := `SELECT id, game_id, score, difficulty, player, ended_at FROM rounds WHERE ` +
		strings.Join(where, " AND ") +
		` ORDER BY score DESC, seq ASC LIMIT ?`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			endedMS int64
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Difficulty, &e.Player, &endedMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(endedMS)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score recorded for a game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	st, err := s.Stats(gameID)
	return st.Best, err
}

// Stats summarises the rounds recorded for a game. A game without rounds
// yields zero Stats.
func (s *Store) Stats(gameID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0.0) FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&st.Rounds, &st.Best, &st.Average)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats for %s: %w", gameID, err)
	}
	return st, nil
}

// ClearScores deletes every round of a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM rounds WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores for %s: %w", gameID, err)
	}
	return nil
}
