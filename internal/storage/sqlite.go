// Package storage provides SQLite-based persistence for finished spawner
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-spawner/internal/core"
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished playground run.
type Session struct {
	ID        int64
	PresetID  string
	Spawned   int
	Blocked   int
	Removed   int
	Cleared   int
	PeakLive  int
	Duration  float64 // Simulated seconds
	CreatedAt time.Time
}

// SessionFromState builds a session record from final simulation counters.
func SessionFromState(presetID string, st core.SimState) Session {
	return Session{
		PresetID: presetID,
		Spawned:  st.Spawned,
		Blocked:  st.Blocked,
		Removed:  st.Removed,
		Cleared:  st.Cleared,
		PeakLive: st.Peak,
		Duration: st.Elapsed,
	}
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset_id TEXT NOT NULL,
			spawned INTEGER NOT NULL DEFAULT 0,
			blocked INTEGER NOT NULL DEFAULT 0,
			removed INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			peak_live INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_preset_id ON sessions(preset_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.PresetID == "" {
		return 0, errors.New("storage: session has no preset id")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (preset_id, spawned, blocked, removed, cleared, peak_live, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.PresetID, sess.Spawned, sess.Blocked, sess.Removed, sess.Cleared,
		sess.PeakLive, sess.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty presetID returns sessions of every preset.
func (s *Store) RecentSessions(presetID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, preset_id, spawned, blocked, removed, cleared, peak_live, duration_secs, created_at
		 FROM sessions
		 WHERE ? = '' OR preset_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		presetID, presetID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.PresetID,
			&sess.Spawned,
			&sess.Blocked,
			&sess.Removed,
			&sess.Cleared,
			&sess.PeakLive,
			&sess.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions for the given preset.
// An empty presetID clears the whole history.
func (s *Store) ClearSessions(presetID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR preset_id = ?", presetID, presetID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// PresetStats contains aggregated statistics for a preset.
type PresetStats struct {
	PresetID     string
	Sessions     int
	TotalSpawned int64
	TotalBlocked int64
	BestPeak     int
	TotalTime    float64
	LastPlayed   time.Time
}

// PresetStats retrieves aggregated statistics for a specific preset.
// A preset that was never played returns zero counters.
func (s *Store) PresetStats(presetID string) (*PresetStats, error) {
	stats := &PresetStats{PresetID: presetID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(spawned), 0), COALESCE(SUM(blocked), 0),
		        COALESCE(MAX(peak_live), 0), COALESCE(SUM(duration_secs), 0), MAX(created_at)
		 FROM sessions WHERE preset_id = ?`,
		presetID,
	).Scan(&stats.Sessions, &stats.TotalSpawned, &stats.TotalBlocked,
		&stats.BestPeak, &stats.TotalTime, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllPresetStats retrieves statistics for every preset that has been played.
func (s *Store) AllPresetStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset_id, COUNT(*), SUM(spawned), SUM(blocked), MAX(peak_live),
		        SUM(duration_secs), MAX(created_at)
		 FROM sessions
		 GROUP BY preset_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all preset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var ps PresetStats
		var lastPlayed any
		if err := rows.Scan(&ps.PresetID, &ps.Sessions, &ps.TotalSpawned, &ps.TotalBlocked,
			&ps.BestPeak, &ps.TotalTime, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.PresetID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
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
