// Package storage provides SQLite-based run history: one record per finished
// run (outcome, clues, time survived). It never stores session state.
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

	"github.com/vovakirdan/survivors-oath/internal/game"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is a single finished run.
type Run struct {
	ID         int64
	RunID      string
	Won        bool
	Clues      int
	Survived   time.Duration
	RivalSlain bool
	CreatedAt  time.Time
}

// Outcome returns "win" or "death".
func (r Run) Outcome() string {
	if r.Won {
		return "win"
	}
	return "death"
}

// Stats aggregates every recorded run.
type Stats struct {
	Runs         int
	Wins         int
	Kills        int
	BestClues    int
	LongestRun   time.Duration
	LastPlayedAt time.Time
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

	// SSH sessions share one store; a single connection serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			won INTEGER NOT NULL DEFAULT 0,
			clues INTEGER NOT NULL DEFAULT 0,
			survived_ms INTEGER NOT NULL DEFAULT 0,
			rival_slain INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_won ON runs(won);
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

// SaveRun records a finished run. An empty RunID gets a fresh UUID and a
// zero CreatedAt is stamped with the current time.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, won, clues, survived_ms, rival_slain, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Won, r.Clues, r.Survived.Milliseconds(), r.RivalSlain,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordOutcome stores a finished session run.
func (s *Store) RecordOutcome(o game.Outcome) error {
	_, err := s.SaveRun(Run{
		RunID:      o.RunID,
		Won:        o.Won,
		Clues:      o.Clues,
		Survived:   o.Survived,
		RivalSlain: o.RivalSlain,
	})
	return err
}

const runColumns = `id, run_id, won, clues, survived_ms, rival_slain, created_at`

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Stats aggregates all recorded runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var longest int64
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(SUM(rival_slain), 0),
		        COALESCE(MAX(clues), 0), COALESCE(MAX(survived_ms), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.Wins, &st.Kills, &st.BestClues, &longest, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	st.LongestRun = time.Duration(longest) * time.Millisecond
	if last.Valid {
		st.LastPlayedAt = parseTime(last.String)
	}
	return st, nil
}

// ClearRuns deletes all run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var survivedMS int64
	var createdAt string

	err := sc.Scan(&r.ID, &r.RunID, &r.Won, &r.Clues, &survivedMS, &r.RivalSlain, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.Survived = time.Duration(survivedMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime reads timestamps written by SaveRun, falling back to the SQLite
// CURRENT_TIMESTAMP layout.
func parseTime(v string) time.Time {
	if t, err := time.Parse(timeLayout, v); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
		return t
	}
	return time.Time{}
}
