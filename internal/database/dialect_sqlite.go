package database

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteDialect stores runs in a local SQLite file.
type SQLiteDialect struct{}

// DriverName returns "sqlite" for the modernc.org/sqlite driver.
func (d *SQLiteDialect) DriverName() string {
	return "sqlite"
}

// Placeholder returns "?" for every position.
func (d *SQLiteDialect) Placeholder(position int) string {
	return "?"
}

// SessionStatements enables WAL so history reads never block a recording
// generate run.
func (d *SQLiteDialect) SessionStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

// RunsSchema uses AUTOINCREMENT so run IDs are never reused after deletes.
func (d *SQLiteDialect) RunsSchema() []string {
	return append([]string{`CREATE TABLE IF NOT EXISTS generation_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed INTEGER NOT NULL,
		mode TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		rooms INTEGER NOT NULL DEFAULT 0,
		floor_tiles INTEGER NOT NULL DEFAULT 0,
		corridor_tiles INTEGER NOT NULL DEFAULT 0,
		props INTEGER NOT NULL DEFAULT 0,
		enemies INTEGER NOT NULL DEFAULT 0,
		corridor_enemies INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`}, runIndexes...)
}

// ReturnsRunID is false; SQLite reports the rowid through LastInsertId.
func (d *SQLiteDialect) ReturnsRunID() bool {
	return false
}

// IsDuplicateRun matches SQLITE_CONSTRAINT_UNIQUE.
func (d *SQLiteDialect) IsDuplicateRun(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
