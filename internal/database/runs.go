package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRunNotFound is returned when no run has the requested ID.
	ErrRunNotFound = errors.New("database: run not found")
	// ErrRunExists is returned when a run with the same seed and
	// fingerprint is already recorded.
	ErrRunExists = errors.New("database: run already recorded")
)

// Run is one recorded generation.
type Run struct {
	ID          int64
	Seed        int64
	Mode        string
	Fingerprint string

	Rooms           int
	FloorTiles      int
	CorridorTiles   int
	Props           int
	Enemies         int
	CorridorEnemies int
	Skipped         int

	Duration  time.Duration
	CreatedAt time.Time
}

// SaveRun inserts run and sets its ID. CreatedAt is filled in when zero.
func (d *Database) SaveRun(run *Run) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	args := []any{
		run.Seed, run.Mode, run.Fingerprint, run.Rooms, run.FloorTiles, run.CorridorTiles,
		run.Props, run.Enemies, run.CorridorEnemies, run.Skipped,
		run.Duration.Milliseconds(), run.CreatedAt,
	}

	if !d.dialect.ReturnsRunID() {
		result, err := d.db.Exec(d.queries.insert, args...)
		if err != nil {
			return d.insertError(run, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get run ID: %w", err)
		}
		run.ID = id
		return nil
	}

	if err := d.db.QueryRow(d.queries.insert, args...).Scan(&run.ID); err != nil {
		return d.insertError(run, err)
	}
	return nil
}

func (d *Database) insertError(run *Run, err error) error {
	if d.dialect.IsDuplicateRun(err) {
		return fmt.Errorf("%w: seed %d", ErrRunExists, run.Seed)
	}
	return fmt.Errorf("failed to save run: %w", err)
}

// GetRun returns the run with id.
func (d *Database) GetRun(id int64) (*Run, error) {
	row := d.db.QueryRow(d.queries.get, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all.
func (d *Database) ListRuns(limit int) ([]*Run, error) {
	if limit > 0 {
		return d.queryRuns(d.queries.listLimit, limit)
	}
	return d.queryRuns(d.queries.list)
}

// FindRunsBySeed returns every run generated from seed, newest first.
func (d *Database) FindRunsBySeed(seed int64) ([]*Run, error) {
	return d.queryRuns(d.queries.bySeed, seed)
}

// CountRuns returns the number of recorded runs.
func (d *Database) CountRuns() (int, error) {
	var count int
	if err := d.db.QueryRow(d.queries.count).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// DeleteRun removes the run with id.
func (d *Database) DeleteRun(id int64) error {
	result, err := d.db.Exec(d.queries.delete, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}

func (d *Database) queryRuns(query string, args ...any) ([]*Run, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var (
		run        Run
		durationMS int64
	)
	err := s.Scan(&run.ID, &run.Seed, &run.Mode, &run.Fingerprint, &run.Rooms, &run.FloorTiles,
		&run.CorridorTiles, &run.Props, &run.Enemies, &run.CorridorEnemies, &run.Skipped,
		&durationMS, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}
