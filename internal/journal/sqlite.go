// Package journal provides SQLite-based persistence for the pup's care
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Event kinds recorded in the journal.
const (
	KindFeed  = "feed"
	KindPlay  = "play"
	KindSleep = "sleep"
	KindWake  = "wake"
	KindAlert = "alert"
	KindReset = "reset"
)

// Journal manages the SQLite database connection for care history. Every
// query is scoped to one owner, so a single database can hold the history of
// several pups; the default owner is the empty string for single-user setups.
type Journal struct {
	db    *sql.DB
	owner string
}

// Entry represents a single recorded care event.
type Entry struct {
	ID        int64
	Kind      string
	Detail    string
	CreatedAt time.Time
}

// Open creates or opens a journal database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Journal, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("journal: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema if it doesn't exist.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS care_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_care_events_owner_kind ON care_events(owner, kind);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Owner returns a view of the journal scoped to the given owner's events.
// Views share the underlying connection; closing any of them closes it for
// all.
func (j *Journal) Owner(name string) *Journal {
	return &Journal{db: j.db, owner: name}
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends a care event.
func (j *Journal) Record(kind, detail string) error {
	_, err := j.db.Exec(
		"INSERT INTO care_events (owner, kind, detail) VALUES (?, ?, ?)",
		j.owner, kind, detail,
	)
	if err != nil {
		return fmt.Errorf("journal: cannot record event: %w", err)
	}
	return nil
}

// Recent retrieves the most recent care events, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, kind, detail, created_at
		 FROM care_events
		 WHERE owner = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		j.owner, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Kind, &e.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return entries, nil
}

// Counts returns how many events of each kind were ever recorded.
func (j *Journal) Counts() (map[string]int, error) {
	rows, err := j.db.Query(
		"SELECT kind, COUNT(*) FROM care_events WHERE owner = ? GROUP BY kind",
		j.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("journal: cannot scan count row: %w", err)
		}
		counts[kind] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return counts, nil
}

// Clear deletes the owner's entire care history.
func (j *Journal) Clear() error {
	_, err := j.db.Exec("DELETE FROM care_events WHERE owner = ?", j.owner)
	if err != nil {
		return fmt.Errorf("journal: cannot clear events: %w", err)
	}
	return nil
}
