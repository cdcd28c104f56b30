// Package storage provides SQLite-based persistence for sandbox sessions.
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

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is the summary of one finished sandbox session.
type SessionRecord struct {
	ID        string
	Scene     string
	Seed      int64
	Boundary  string
	StartedAt time.Time
	EndedAt   time.Time
	Ticks     uint64
	Peak      int
	Spawned   int
	Reactions int

	// Written alongside the session row; not filled by the list queries.
	Tallies []ReactionTally
	Samples []PopulationSample
}

// Duration returns how long the session ran.
func (r SessionRecord) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// ReactionTally counts one reactant pair of a session.
type ReactionTally struct {
	A, B    string
	Product string
	Count   int
}

// sampleTotalKind marks the per-tick row holding a sample's total.
const sampleTotalKind = ""

// PopulationSample is the per-kind population at a tick. Counts may be empty.
type PopulationSample struct {
	Tick   uint64
	Counts map[string]int
}

// Total returns the number of particles in the sample.
func (p PopulationSample) Total() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}
	return n
}

// ProductTotal aggregates how often a product was made across sessions.
type ProductTotal struct {
	Product  string
	Count    int
	Sessions int
}

const timeLayout = "2006-01-02 15:04:05"

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
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			scene TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			boundary TEXT NOT NULL DEFAULT '',
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			peak INTEGER NOT NULL DEFAULT 0,
			spawned INTEGER NOT NULL DEFAULT 0,
			reactions INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);

		CREATE TABLE IF NOT EXISTS reaction_tallies (
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			reactant_a TEXT NOT NULL,
			reactant_b TEXT NOT NULL,
			product TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (session_id, reactant_a, reactant_b)
		);
		CREATE INDEX IF NOT EXISTS idx_tallies_product ON reaction_tallies(product);

		CREATE TABLE IF NOT EXISTS population_samples (
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (session_id, tick, kind)
		);
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

// SaveSession writes a session with its tallies and samples in one
// transaction. An empty ID is replaced with a new UUID, which is returned.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Scene == "" {
		return "", errors.New("storage: session has no scene")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(
		`INSERT INTO sessions
		 (id, scene, seed, boundary, started_at, ended_at, ticks, peak, spawned, reactions)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Scene,
		rec.Seed,
		rec.Boundary,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.EndedAt.UTC().Format(timeLayout),
		int64(rec.Ticks),
		rec.Peak,
		rec.Spawned,
		rec.Reactions,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	for _, t := range rec.Tallies {
		if _, err := tx.Exec(
			`INSERT INTO reaction_tallies (session_id, reactant_a, reactant_b, product, count)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID, t.A, t.B, t.Product, t.Count,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save reaction tally: %w", err)
		}
	}

	for _, p := range rec.Samples {
		// The total row keeps samples with no particles.
		if _, err := tx.Exec(
			`INSERT INTO population_samples (session_id, tick, kind, count)
			 VALUES (?, ?, ?, ?)`,
			rec.ID, int64(p.Tick), sampleTotalKind, p.Total(),
		); err != nil {
			return "", fmt.Errorf("storage: cannot save population sample: %w", err)
		}
		for kind, count := range p.Counts {
			if kind == sampleTotalKind {
				continue
			}
			if _, err := tx.Exec(
				`INSERT INTO population_samples (session_id, tick, kind, count)
				 VALUES (?, ?, ?, ?)`,
				rec.ID, int64(p.Tick), kind, count,
			); err != nil {
				return "", fmt.Errorf("storage: cannot save population sample: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return rec.ID, nil
}

const sessionColumns = `id, scene, seed, boundary, started_at, ended_at, ticks, peak, spawned, reactions`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (SessionRecord, error) {
	var rec SessionRecord
	var started, ended any
	var ticks int64
	err := row.Scan(
		&rec.ID,
		&rec.Scene,
		&rec.Seed,
		&rec.Boundary,
		&started,
		&ended,
		&ticks,
		&rec.Peak,
		&rec.Spawned,
		&rec.Reactions,
	)
	if err != nil {
		return rec, err
	}
	rec.Ticks = uint64(ticks)
	rec.StartedAt = parseTime(started)
	rec.EndedAt = parseTime(ended)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SessionByID retrieves a session by id, or nil when there is none.
func (s *Store) SessionByID(id string) (*SessionRecord, error) {
	rec, err := scanSession(s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// ReactionTallies returns the tallies of a session ordered by count.
func (s *Store) ReactionTallies(sessionID string) ([]ReactionTally, error) {
	rows, err := s.db.Query(
		`SELECT reactant_a, reactant_b, product, count
		 FROM reaction_tallies
		 WHERE session_id = ?
		 ORDER BY count DESC, reactant_a, reactant_b`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query reaction tallies: %w", err)
	}
	defer rows.Close()

	var out []ReactionTally
	for rows.Next() {
		var t ReactionTally
		if err := rows.Scan(&t.A, &t.B, &t.Product, &t.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// PopulationSamples returns the samples of a session in tick order.
func (s *Store) PopulationSamples(sessionID string) ([]PopulationSample, error) {
	rows, err := s.db.Query(
		`SELECT tick, kind, count
		 FROM population_samples
		 WHERE session_id = ?
		 ORDER BY tick, kind`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query population samples: %w", err)
	}
	defer rows.Close()

	var out []PopulationSample
	for rows.Next() {
		var tick int64
		var kind string
		var count int
		if err := rows.Scan(&tick, &kind, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if n := len(out); n == 0 || out[n-1].Tick != uint64(tick) {
			out = append(out, PopulationSample{Tick: uint64(tick), Counts: make(map[string]int)})
		}
		if kind != sampleTotalKind {
			out[len(out)-1].Counts[kind] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// TotalsByProduct aggregates reaction counts per product over all sessions.
func (s *Store) TotalsByProduct() ([]ProductTotal, error) {
	rows, err := s.db.Query(
		`SELECT product, SUM(count), COUNT(DISTINCT session_id)
		 FROM reaction_tallies
		 GROUP BY product
		 ORDER BY SUM(count) DESC, product`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query product totals: %w", err)
	}
	defer rows.Close()

	var out []ProductTotal
	for rows.Next() {
		var p ProductTotal
		if err := rows.Scan(&p.Product, &p.Count, &p.Sessions); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteSession removes a session and its tallies and samples.
func (s *Store) DeleteSession(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, q := range []string{
		"DELETE FROM reaction_tallies WHERE session_id = ?",
		"DELETE FROM population_samples WHERE session_id = ?",
		"DELETE FROM sessions WHERE id = ?",
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("storage: cannot delete session: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}
