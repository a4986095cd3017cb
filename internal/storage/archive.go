// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package storage keeps a local archive of completed scans in SQLite so
// `pentest-tui history` works without a backend round-trip. The archive is a
// write-behind copy: the dashboard still shows exactly what the server
// returns, and the archive never feeds back into it.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/oEg8/pentest-tui/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	row_id      TEXT PRIMARY KEY,
	scan_id     INTEGER NOT NULL,
	username    TEXT NOT NULL,
	engine      TEXT NOT NULL,
	status      TEXT NOT NULL,
	target_ip   TEXT NOT NULL,
	output      TEXT NOT NULL,
	created_at  DATETIME NOT NULL,
	recorded_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_recorded ON scans(recorded_at DESC);
`

// Entry is one archived scan with the client-side context the server result
// does not carry.
type Entry struct {
	RowID      string
	Username   string
	Engine     string
	RecordedAt time.Time
	Result     model.ScanResult
}

// Archive is the SQLite-backed scan archive.
type Archive struct {
	db         *sql.DB
	maxEntries int
}

// Open opens (and if needed initializes) the archive at dbPath. Use
// ":memory:" in tests. maxEntries caps retained rows; 0 keeps everything.
func Open(dbPath string, maxEntries int) (*Archive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("archive: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: create schema: %w", err)
	}
	return &Archive{db: db, maxEntries: maxEntries}, nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Record stores one completed scan and prunes past the retention cap.
func (a *Archive) Record(username, engine string, res model.ScanResult) error {
	_, err := a.db.Exec(
		`INSERT INTO scans (row_id, scan_id, username, engine, status, target_ip, output, created_at, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), res.ID, username, engine, res.Status, res.TargetIP, res.Output,
		res.CreatedAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("archive: record scan: %w", err)
	}
	return a.prune()
}

// prune drops the oldest rows beyond the retention cap.
func (a *Archive) prune() error {
	if a.maxEntries <= 0 {
		return nil
	}
	_, err := a.db.Exec(
		`DELETE FROM scans WHERE row_id NOT IN (
			SELECT row_id FROM scans ORDER BY recorded_at DESC LIMIT ?
		)`, a.maxEntries,
	)
	if err != nil {
		return fmt.Errorf("archive: prune: %w", err)
	}
	return nil
}

// List returns archived scans, newest first. limit <= 0 returns all.
func (a *Archive) List(limit int) ([]Entry, error) {
	q := `SELECT row_id, scan_id, username, engine, status, target_ip, output, created_at, recorded_at
	      FROM scans ORDER BY recorded_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.RowID, &e.Result.ID, &e.Username, &e.Engine, &e.Result.Status,
			&e.Result.TargetIP, &e.Result.Output, &e.Result.CreatedAt, &e.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("archive: scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: iterate rows: %w", err)
	}
	return entries, nil
}

// Count returns the number of archived scans.
func (a *Archive) Count() (int, error) {
	var n int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM scans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("archive: count: %w", err)
	}
	return n, nil
}
