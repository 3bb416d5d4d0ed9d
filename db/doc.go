// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL store backend.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - participant: one row per nickname, plans as JSON text
  - draw: one row per completed draw, assignments as JSON text

# Portability

The same schema runs on SQLite (modernc.org/sqlite) and PostgreSQL
(lib/pq). Timestamps are RFC 3339 text and plans are JSON text, so no
driver-specific column types are involved. first_seen_at records the
original insertion time and is not touched by resubmissions, which keeps
the listing order stable.
*/
package db
