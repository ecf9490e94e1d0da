// Package storage provides SQLite-based persistence for match history.
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

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID        int64
	MatchID   string // UUID, generated on save when empty
	P1Char    int
	P2Char    int
	P1Rounds  int
	P2Rounds  int
	Winner    int // Winning slot: 0 for P1, 1 for P2
	Rounds    int
	Ticks     int
	Source    string // "local", "ssh" or "sim"
	CreatedAt time.Time
}

// CharacterRecord aggregates results per roster character across both slots.
type CharacterRecord struct {
	CharID int
	Played int
	Wins   int
}

// Losses returns played matches that were not won.
func (r CharacterRecord) Losses() int {
	return r.Played - r.Wins
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			p1_char INTEGER NOT NULL,
			p2_char INTEGER NOT NULL,
			p1_rounds INTEGER NOT NULL DEFAULT 0,
			p2_rounds INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_p1_char ON matches(p1_char);
		CREATE INDEX IF NOT EXISTS idx_matches_p2_char ON matches(p2_char);
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

// SaveMatch records a finished match and returns its match ID.
func (s *Store) SaveMatch(rec MatchRecord) (string, error) {
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}
	if rec.Source == "" {
		rec.Source = "local"
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, p1_char, p2_char, p1_rounds, p2_rounds, winner, rounds, ticks, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.P1Char,
		rec.P2Char,
		rec.P1Rounds,
		rec.P2Rounds,
		rec.Winner,
		rec.Rounds,
		rec.Ticks,
		rec.Source,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return rec.MatchID, nil
}

const matchColumns = `id, match_id, p1_char, p2_char, p1_rounds, p2_rounds,
		        winner, rounds, ticks, source, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var rec MatchRecord
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.P1Char,
		&rec.P2Char,
		&rec.P1Rounds,
		&rec.P2Rounds,
		&rec.Winner,
		&rec.Rounds,
		&rec.Ticks,
		&rec.Source,
		&createdAt,
	)
	if err != nil {
		return MatchRecord{}, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)
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
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// CharacterRecords returns win counts for every character that has played,
// ordered by character ID. Mirror matches count once per slot.
func (s *Store) CharacterRecords() ([]CharacterRecord, error) {
	rows, err := s.db.Query(
		`SELECT char_id, COUNT(*), SUM(won)
		 FROM (
			SELECT p1_char AS char_id, CASE WHEN winner = 0 THEN 1 ELSE 0 END AS won FROM matches
			UNION ALL
			SELECT p2_char AS char_id, CASE WHEN winner = 1 THEN 1 ELSE 0 END AS won FROM matches
		 )
		 GROUP BY char_id
		 ORDER BY char_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get character records: %w", err)
	}
	defer rows.Close()

	var records []CharacterRecord
	for rows.Next() {
		var r CharacterRecord
		if err := rows.Scan(&r.CharID, &r.Played, &r.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan record row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearMatches deletes all match history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
