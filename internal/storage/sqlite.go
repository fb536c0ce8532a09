// Package storage provides SQLite-based persistence for show history.
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

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
)

// Store manages the SQLite database connection for show history.
type Store struct {
	db *sql.DB
}

// ShowRecord is one finished run of the show.
type ShowRecord struct {
	ID        int64
	Seed      int64
	Backend   string
	GridW     int // Grid the show ran on, so a replay can reuse it
	GridH     int
	StartedAt time.Time
	Duration  time.Duration
	Stats     fireworks.Stats
	CreatedAt time.Time
}

// Totals aggregates every recorded show.
type Totals struct {
	Shows           int
	Ticks           int64
	Launched        int64
	Explosions      int64
	SecondaryBursts int64
	PeakParticles   int
	Duration        time.Duration
	LastShow        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS shows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			backend TEXT NOT NULL,
			grid_width INTEGER NOT NULL DEFAULT 0,
			grid_height INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			launched INTEGER NOT NULL DEFAULT 0,
			explosions INTEGER NOT NULL DEFAULT 0,
			secondary_bursts INTEGER NOT NULL DEFAULT 0,
			peak_particles INTEGER NOT NULL DEFAULT 0,
			peak_fireworks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_shows_started_at ON shows(started_at);
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

// SaveShow records a finished show.
// Returns the ID of the inserted record.
func (s *Store) SaveShow(rec ShowRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO shows
		 (seed, backend, grid_width, grid_height, started_at, duration_ms, ticks, launched, explosions, secondary_bursts, peak_particles, peak_fireworks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed,
		rec.Backend,
		rec.GridW,
		rec.GridH,
		rec.StartedAt.UnixMilli(),
		rec.Duration.Milliseconds(),
		rec.Stats.Ticks,
		rec.Stats.Launched,
		rec.Stats.Explosions,
		rec.Stats.SecondaryBursts,
		rec.Stats.PeakParticles,
		rec.Stats.PeakFireworks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save show: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentShows retrieves the most recent shows, newest first.
func (s *Store) RecentShows(limit int) ([]ShowRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+showColumns+`
		 FROM shows
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shows: %w", err)
	}
	defer rows.Close()

	var records []ShowRecord
	for rows.Next() {
		rec, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Totals retrieves aggregated statistics over all recorded shows.
func (s *Store) Totals() (*Totals, error) {
	var (
		t          Totals
		durationMS int64
		lastMS     sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(launched), 0),
		        COALESCE(SUM(explosions), 0), COALESCE(SUM(secondary_bursts), 0),
		        COALESCE(MAX(peak_particles), 0), COALESCE(SUM(duration_ms), 0), MAX(started_at)
		 FROM shows`,
	).Scan(&t.Shows, &t.Ticks, &t.Launched, &t.Explosions, &t.SecondaryBursts, &t.PeakParticles, &durationMS, &lastMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	t.Duration = time.Duration(durationMS) * time.Millisecond
	if lastMS.Valid {
		t.LastShow = time.UnixMilli(lastMS.Int64)
	}
	return &t, nil
}

// ShowByID retrieves a single show. Returns nil if it does not exist.
func (s *Store) ShowByID(id int64) (*ShowRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+showColumns+`
		 FROM shows WHERE id = ?`,
		id,
	)
	rec, err := scanShow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query show: %w", err)
	}
	return rec, nil
}

// ClearHistory deletes every recorded show.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM shows"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// showColumns lists the columns scanShow expects, in order.
const showColumns = `id, seed, backend, grid_width, grid_height, started_at, duration_ms, ticks,
		launched, explosions, secondary_bursts, peak_particles, peak_fireworks, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanShow reads one row selected with showColumns.
func scanShow(sc scanner) (*ShowRecord, error) {
	var (
		rec        ShowRecord
		startedMS  int64
		durationMS int64
		createdAt  any
	)
	if err := sc.Scan(
		&rec.ID,
		&rec.Seed,
		&rec.Backend,
		&rec.GridW,
		&rec.GridH,
		&startedMS,
		&durationMS,
		&rec.Stats.Ticks,
		&rec.Stats.Launched,
		&rec.Stats.Explosions,
		&rec.Stats.SecondaryBursts,
		&rec.Stats.PeakParticles,
		&rec.Stats.PeakFireworks,
		&createdAt,
	); err != nil {
		return nil, err
	}

	rec.StartedAt = time.UnixMilli(startedMS)
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
