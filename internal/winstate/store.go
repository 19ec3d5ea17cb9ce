// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/winstate/store.go
// Summary: SQLite store of window sizes keyed by window title.
// Usage: Open once per process and hand the store to every window; windows
// restore their size on the first frame and save it on resize and close.

package winstate

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
)

const schema = `
CREATE TABLE IF NOT EXISTS window_state (
	title      TEXT PRIMARY KEY,
	width      REAL NOT NULL,
	height     REAL NOT NULL,
	size_state TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("winstate: store closed")

// Store persists window geometry in a SQLite database.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file.
func (s *Store) Path() string { return s.path }

// Load returns the stored geometry of the window titled title. ok is false
// when nothing was saved for it.
func (s *Store) Load(title string) (geo.Extent, host.SizeState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return geo.Extent{}, host.SizeNormal, false, ErrClosed
	}

	var (
		w, h  float64
		state string
	)
	err := s.db.QueryRow(
		`SELECT width, height, size_state FROM window_state WHERE title = ?`, title,
	).Scan(&w, &h, &state)
	if errors.Is(err, sql.ErrNoRows) {
		return geo.Extent{}, host.SizeNormal, false, nil
	}
	if err != nil {
		return geo.Extent{}, host.SizeNormal, false, fmt.Errorf("load %q: %w", title, err)
	}
	return geo.Ext(float32(w), float32(h)), host.ParseSizeState(state), true, nil
}

// Save records the geometry of the window titled title. A minimized window
// keeps its previous size so it restores to something usable.
func (s *Store) Save(title string, size geo.Extent, state host.SizeState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	now := time.Now().Unix()
	if state == host.SizeMinimized {
		_, err := s.db.Exec(
			`UPDATE window_state SET updated_at = ? WHERE title = ?`, now, title)
		if err != nil {
			return fmt.Errorf("save %q: %w", title, err)
		}
		return nil
	}
	_, err := s.db.Exec(`
INSERT INTO window_state (title, width, height, size_state, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(title) DO UPDATE SET
	width = excluded.width,
	height = excluded.height,
	size_state = excluded.size_state,
	updated_at = excluded.updated_at`,
		title, float64(size.W), float64(size.H), state.String(), now)
	if err != nil {
		return fmt.Errorf("save %q: %w", title, err)
	}
	return nil
}

// Forget removes the entry of the window titled title.
func (s *Store) Forget(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if _, err := s.db.Exec(`DELETE FROM window_state WHERE title = ?`, title); err != nil {
		return fmt.Errorf("forget %q: %w", title, err)
	}
	return nil
}

// Close closes the database. Later calls are no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
