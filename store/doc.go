// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists participant submissions and draw history.

# Interface

Store is the single seam between HTTP handlers and durable state:

	st.ListParticipants()      // full snapshot, insertion order
	st.UpsertParticipant(rec)  // insert or wholesale-replace by ID
	st.SaveDraw(draw)          // append to draw history
	st.ListDraws()             // newest first
	st.LatestDraw()            // most recent, or ErrNoDraws

# Backends

JSONStore (default) is the flat-file backend: a users.json array that is
fully rewritten on every upsert, plus a sibling draws.json. It is
wire-compatible with data written by earlier deployments of the service.
A per-store mutex serializes every read-modify-write cycle, so
interleaved submissions cannot drop each other's writes.

SQLStore runs the same contract on SQLite (modernc.org/sqlite) or
PostgreSQL (lib/pq) through database/sql, with plans and assignments
stored as JSON text. Upserts run in a transaction.

# Errors

All backend failures wrap ErrUnavailable:

	if errors.Is(err, store.ErrUnavailable) { ... }

Callers surface these as fatal for the attempted operation; nothing in
this package retries.
*/
package store
