package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cablestats/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a run id is unknown
var ErrNotFound = errors.New("run not found")

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return err
	}

	// Create tables if not exists
	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		status TEXT,
		manifest TEXT,
		record_count INTEGER DEFAULT 0,
		error_message TEXT DEFAULT '',
		started_at DATETIME,
		finished_at DATETIME
	);
	`
	statsTable := `
	CREATE TABLE IF NOT EXISTS run_stats (
		run_id TEXT,
		kind TEXT,
		count INTEGER,
		length INTEGER,
		wrap_earth_count REAL,
		PRIMARY KEY (run_id, kind)
	);
	`
	warningTable := `
	CREATE TABLE IF NOT EXISTS run_warnings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		cable_id TEXT,
		unit TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, statsTable, warningTable} {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return err
		}
	}

	if db != nil {
		db.Close()
	}
	db = conn
	return nil
}

// Close releases the DB connection
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// SaveRun stores a new run in pending state
func SaveRun(runID, manifest string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, status, manifest, started_at) VALUES (?, ?, ?, ?)`,
		runID, model.StatusPending, manifest, now)
	return err
}

// UpdateRunStatus updates run status
func UpdateRunStatus(runID, status string) error {
	res, err := db.Exec(`UPDATE runs SET status = ? WHERE id = ?`, status, runID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

// CompleteRun stores the result of a finished run
func CompleteRun(runID string, result model.AggregateResult, recordCount int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	partitions := []struct {
		name  string
		stats model.CableStats
	}{
		{"active", result.Active},
		{"planned", result.Planned},
	}
	for _, p := range partitions {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO run_stats (run_id, kind, count, length, wrap_earth_count) VALUES (?, ?, ?, ?, ?)`,
			runID, p.name, p.stats.Count, p.stats.Length, p.stats.WrapEarthCount); err != nil {
			return fmt.Errorf("failed to save %s stats: %w", p.name, err)
		}
	}

	now := time.Now().UTC()
	res, err := tx.Exec(`UPDATE runs SET status = ?, record_count = ?, finished_at = ? WHERE id = ?`,
		model.StatusCompleted, recordCount, now, runID)
	if err != nil {
		return err
	}
	if err := expectRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

// FailRun marks a run failed and records its error
func FailRun(runID string, runErr error) error {
	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	now := time.Now().UTC()
	res, err := db.Exec(`UPDATE runs SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		model.StatusFailed, msg, now, runID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

// SaveWarning records a unit warning for a run
func SaveWarning(runID, cableID, unit string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_warnings (run_id, cable_id, unit, created_at) VALUES (?, ?, ?, ?)`,
		runID, cableID, unit, now)
	return err
}

// ListRuns returns all runs with basic info, newest first
func ListRuns() ([]model.RunSummary, error) {
	rows, err := db.Query(`SELECT id, status, manifest, record_count, error_message, started_at, finished_at FROM runs ORDER BY started_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []model.RunSummary{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches a run with its stats and warnings
func GetRun(runID string) (model.RunSummary, error) {
	row := db.QueryRow(`SELECT id, status, manifest, record_count, error_message, started_at, finished_at FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RunSummary{}, ErrNotFound
	}
	if err != nil {
		return model.RunSummary{}, err
	}

	if run.Stats, err = getStats(runID); err != nil {
		return model.RunSummary{}, err
	}
	if run.Warnings, err = getWarnings(runID); err != nil {
		return model.RunSummary{}, err
	}
	return run, nil
}

// LatestStats returns the stats of the most recent completed run
func LatestStats() (string, model.AggregateResult, error) {
	var runID string
	err := db.QueryRow(`SELECT id FROM runs WHERE status = ? ORDER BY finished_at DESC, rowid DESC LIMIT 1`, model.StatusCompleted).
		Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.AggregateResult{}, ErrNotFound
	}
	if err != nil {
		return "", model.AggregateResult{}, err
	}

	stats, err := getStats(runID)
	if err != nil {
		return "", model.AggregateResult{}, err
	}
	if stats == nil {
		return "", model.AggregateResult{}, ErrNotFound
	}
	return runID, *stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (model.RunSummary, error) {
	var run model.RunSummary
	var finishedAt sql.NullTime
	if err := s.Scan(&run.ID, &run.Status, &run.Manifest, &run.RecordCount, &run.Error, &run.StartedAt, &finishedAt); err != nil {
		return model.RunSummary{}, err
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}
	return run, nil
}

func getStats(runID string) (*model.AggregateResult, error) {
	rows, err := db.Query(`SELECT kind, count, length, wrap_earth_count FROM run_stats WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result model.AggregateResult
	found := false
	for rows.Next() {
		var partition string
		var stats model.CableStats
		if err := rows.Scan(&partition, &stats.Count, &stats.Length, &stats.WrapEarthCount); err != nil {
			return nil, err
		}
		switch partition {
		case "active":
			result.Active = stats
		case "planned":
			result.Planned = stats
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &result, nil
}

func getWarnings(runID string) ([]model.UnitWarning, error) {
	rows, err := db.Query(`SELECT cable_id, unit, created_at FROM run_warnings WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warnings []model.UnitWarning
	for rows.Next() {
		var w model.UnitWarning
		if err := rows.Scan(&w.CableID, &w.Unit, &w.CreatedAt); err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
