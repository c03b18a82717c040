package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresDialect stores runs in a shared PostgreSQL database.
type PostgresDialect struct{}

// DriverName returns "postgres" for the lib/pq driver.
func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// Placeholder returns "$N" for the given position.
func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

// SessionStatements returns nothing; the history needs no session setup.
func (d *PostgresDialect) SessionStatements() []string {
	return nil
}

// RunsSchema keeps created_at with its time zone so runs migrated from
// SQLite sort the same way.
func (d *PostgresDialect) RunsSchema() []string {
	return append([]string{`CREATE TABLE IF NOT EXISTS generation_runs (
		id BIGSERIAL PRIMARY KEY,
		seed BIGINT NOT NULL,
		mode TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		rooms INTEGER NOT NULL DEFAULT 0,
		floor_tiles INTEGER NOT NULL DEFAULT 0,
		corridor_tiles INTEGER NOT NULL DEFAULT 0,
		props INTEGER NOT NULL DEFAULT 0,
		enemies INTEGER NOT NULL DEFAULT 0,
		corridor_enemies INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`}, runIndexes...)
}

// ReturnsRunID is true; lib/pq does not implement LastInsertId.
func (d *PostgresDialect) ReturnsRunID() bool {
	return true
}

// IsDuplicateRun matches SQLSTATE 23505 (unique_violation).
func (d *PostgresDialect) IsDuplicateRun(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
