// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as RFC 3339 text so the same schema works on
// both SQLite and PostgreSQL. Plans are stored as JSON text, preserving
// the {games: [...], price: ...} shape of the flat-file layout.
const schema = `
-- Participants
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    plan_a TEXT NOT NULL,
    plan_b TEXT NOT NULL,
    submitted_at TEXT NOT NULL,
    first_seen_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participant_first_seen ON participant(first_seen_at);

-- Draw history
CREATE TABLE IF NOT EXISTS draw (
    id TEXT PRIMARY KEY,
    performed_at TEXT NOT NULL,
    assignments TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_draw_performed_at ON draw(performed_at);
`
