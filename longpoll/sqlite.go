package longpoll

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver registration
)

const busyTimeoutMillis = 5000

// SQLiteStore persists the poll offset in a SQLite database, so
// restarts resume exactly after the last confirmed update.
type SQLiteStore struct {
	db *sql.DB
}

var _ OffsetStore = (*SQLiteStore)(nil)

// OpenSQLiteStore opens (creating if needed) a SQLite database at
// the given path. The database uses WAL mode, a 5 s busy timeout,
// and a single connection (SQLite serialises writes). Call Close
// when done.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("longpoll: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("longpoll: open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("longpoll: enable WAL: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMillis)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("longpoll: set busy_timeout: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS poll_offset (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	offset  INTEGER NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("longpoll: migrate schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Offset implements OffsetStore.
func (s *SQLiteStore) Offset() (int, error) {
	var offset int
	err := s.db.QueryRow("SELECT offset FROM poll_offset WHERE id = 1").Scan(&offset)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("longpoll: load offset: %w", err)
	}
	return offset, nil
}

// SetOffset implements OffsetStore.
func (s *SQLiteStore) SetOffset(offset int) error {
	_, err := s.db.Exec(`
INSERT INTO poll_offset (id, offset) VALUES (1, ?)
ON CONFLICT (id) DO UPDATE SET offset = excluded.offset`, offset)
	if err != nil {
		return fmt.Errorf("longpoll: save offset %d: %w", offset, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
