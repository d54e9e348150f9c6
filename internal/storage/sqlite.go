// Package storage provides SQLite-based persistence for finished matches.
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

// Winner values stored in the matches table.
const (
	WinnerHuman    = "human"
	WinnerComputer = "computer"
)

// Mode values identify the front end a match was played on.
const (
	ModeTUI     = "tui"
	ModeClassic = "classic"
	ModeSSH     = "ssh"
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is the result of one finished game.
type MatchRecord struct {
	ID            int64
	MatchID       string
	Mode          string
	Player        string
	Winner        string
	HumanShots    int
	HumanHits     int
	ComputerShots int
	ComputerHits  int
	Duration      int // Duration in seconds
	CreatedAt     time.Time
}

// Won reports whether the human won the match.
func (r MatchRecord) Won() bool {
	return r.Winner == WinnerHuman
}

// Accuracy returns the human's hit ratio, 0 when no shots were fired.
func (r MatchRecord) Accuracy() float64 {
	if r.HumanShots == 0 {
		return 0
	}
	return float64(r.HumanHits) / float64(r.HumanShots)
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

	store, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an open database and ensures the schema exists. The caller
// keeps ownership of db until the Store is closed.
func New(db *sql.DB) (*Store, error) {
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			winner TEXT NOT NULL,
			human_shots INTEGER NOT NULL DEFAULT 0,
			human_hits INTEGER NOT NULL DEFAULT 0,
			computer_shots INTEGER NOT NULL DEFAULT 0,
			computer_hits INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
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

// SaveMatch records a finished match. An empty MatchID is replaced with a
// fresh UUID. Returns the stored match ID.
func (s *Store) SaveMatch(rec MatchRecord) (string, error) {
	if rec.Winner != WinnerHuman && rec.Winner != WinnerComputer {
		return "", fmt.Errorf("storage: invalid winner %q", rec.Winner)
	}
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, mode, player, winner, human_shots, human_hits, computer_shots, computer_hits, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.Mode,
		rec.Player,
		rec.Winner,
		rec.HumanShots,
		rec.HumanHits,
		rec.ComputerShots,
		rec.ComputerHits,
		rec.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return rec.MatchID, nil
}

const matchColumns = `id, match_id, mode, player, winner, human_shots, human_hits,
	computer_shots, computer_hits, duration_secs, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var rec MatchRecord
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.Mode,
		&rec.Player,
		&rec.Winner,
		&rec.HumanShots,
		&rec.HumanHits,
		&rec.ComputerShots,
		&rec.ComputerHits,
		&rec.Duration,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// MatchByID retrieves a match by its match ID. Returns nil when absent.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// A non-empty player restricts the result to that player.
func (s *Store) RecentMatches(player string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + matchColumns + ` FROM matches`
	args := []any{}
	if player != "" {
		query += ` WHERE player = ?`
		args = append(args, player)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// MatchStats contains aggregated statistics over stored matches.
type MatchStats struct {
	Played       int
	Wins         int
	Losses       int
	AvgShots     float64 // Average human shots per match
	AvgShotsWin  float64 // Average human shots in matches the human won
	BestWinShots int     // Fewest human shots in a won match, 0 if none
	LastPlayed   time.Time
}

// WinRate returns wins divided by matches played.
func (m MatchStats) WinRate() float64 {
	if m.Played == 0 {
		return 0
	}
	return float64(m.Wins) / float64(m.Played)
}

// Stats aggregates all matches, or one player's when player is non-empty.
func (s *Store) Stats(player string) (*MatchStats, error) {
	where := ""
	args := []any{}
	if player != "" {
		where = " WHERE player = ?"
		args = append(args, player)
	}

	stats := &MatchStats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'human' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(human_shots), 0),
		        COALESCE(AVG(CASE WHEN winner = 'human' THEN human_shots END), 0),
		        COALESCE(MIN(CASE WHEN winner = 'human' THEN human_shots END), 0)
		 FROM matches`+where,
		args...,
	).Scan(&stats.Played, &stats.Wins, &stats.AvgShots, &stats.AvgShotsWin, &stats.BestWinShots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.Losses = stats.Played - stats.Wins

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches`+where+` ORDER BY id DESC LIMIT 1`,
		args...,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
