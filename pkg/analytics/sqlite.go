package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps events in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the event database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// OpenExistingSQLite opens the event database at dbPath only if it already
// exists. A missing file yields an error wrapping os.ErrNotExist and nothing
// is created.
func OpenExistingSQLite(dbPath string) (*SQLiteStore, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return OpenSQLite(dbPath)
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record implements Recorder.
func (s *SQLiteStore) Record(ctx context.Context, ev Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (name, created_at) VALUES (?, ?)`,
		string(ev.Name), ev.At.UnixMilli())
	return err
}

// Counts returns the number of events per name.
func (s *SQLiteStore) Counts(ctx context.Context) (map[EventName]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, COUNT(*) FROM events GROUP BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[EventName]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[EventName(name)] = n
	}
	return counts, rows.Err()
}

// Since returns events recorded at or after t, oldest first.
func (s *SQLiteStore) Since(ctx context.Context, t time.Time) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, created_at FROM events WHERE created_at >= ? ORDER BY created_at, id`,
		t.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var name string
		var ms int64
		if err := rows.Scan(&name, &ms); err != nil {
			return nil, err
		}
		events = append(events, Event{Name: EventName(name), At: time.UnixMilli(ms).UTC()})
	}
	return events, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
