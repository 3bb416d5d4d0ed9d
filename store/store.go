// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"github.com/danielhkuo/gift-draw/models"
)

var (
	// ErrUnavailable wraps any failure to read or write the backing
	// medium. Callers treat it as fatal for the attempted operation;
	// there is no built-in retry.
	ErrUnavailable = errors.New("participant store unavailable")

	// ErrNoDraws is returned by LatestDraw before any draw has been
	// performed.
	ErrNoDraws = errors.New("no draws have been performed")
)

// Store is the durable home of participant submissions and draw history.
//
// Both implementations serialize their writes: the JSON file store holds
// a mutex across each read-modify-write cycle, and the SQL store runs
// its upsert inside a transaction. Concurrent upserts therefore apply
// one at a time, last write wins.
type Store interface {
	// ListParticipants returns the full snapshot in insertion order.
	ListParticipants() ([]models.ParticipantRecord, error)

	// UpsertParticipant inserts the record, or wholesale-replaces the
	// existing record with the same ID. A replaced record keeps its
	// original position in the listing order.
	UpsertParticipant(record models.ParticipantRecord) error

	// SaveDraw appends a completed draw to the history.
	SaveDraw(draw models.DrawRecord) error

	// ListDraws returns all recorded draws, newest first.
	ListDraws() ([]models.DrawRecord, error)

	// LatestDraw returns the most recent draw, or ErrNoDraws.
	LatestDraw() (models.DrawRecord, error)

	Close() error
}
