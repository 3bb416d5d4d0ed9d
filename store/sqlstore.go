// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/gift-draw/models"
)

// SQLStore keeps participants and draw history in a relational database
// via database/sql. It works unchanged on SQLite and PostgreSQL; plans
// and assignments are stored as JSON text so the persisted shape matches
// the flat-file layout.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ListParticipants() ([]models.ParticipantRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, plan_a, plan_b, submitted_at
		FROM participant
		ORDER BY first_seen_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query participants: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	records := []models.ParticipantRecord{}
	for rows.Next() {
		var planA, planB, submittedAt string
		var record models.ParticipantRecord
		if err := rows.Scan(&record.ID, &planA, &planB, &submittedAt); err != nil {
			return nil, fmt.Errorf("%w: scan participant: %v", ErrUnavailable, err)
		}

		if err := json.Unmarshal([]byte(planA), &record.PlanA); err != nil {
			return nil, fmt.Errorf("%w: decode plan A for %s: %v", ErrUnavailable, record.ID, err)
		}
		if err := json.Unmarshal([]byte(planB), &record.PlanB); err != nil {
			return nil, fmt.Errorf("%w: decode plan B for %s: %v", ErrUnavailable, record.ID, err)
		}
		record.Timestamp, err = time.Parse(time.RFC3339Nano, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: parse timestamp for %s: %v", ErrUnavailable, record.ID, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate participants: %v", ErrUnavailable, err)
	}
	return records, nil
}

func (s *SQLStore) UpsertParticipant(record models.ParticipantRecord) error {
	planA, err := json.Marshal(record.PlanA)
	if err != nil {
		return fmt.Errorf("%w: encode plan A: %v", ErrUnavailable, err)
	}
	planB, err := json.Marshal(record.PlanB)
	if err != nil {
		return fmt.Errorf("%w: encode plan B: %v", ErrUnavailable, err)
	}
	submittedAt := record.Timestamp.Format(time.RFC3339Nano)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", ErrUnavailable, err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRow(`
		SELECT id FROM participant WHERE id = $1
	`, record.ID).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`
			INSERT INTO participant (id, plan_a, plan_b, submitted_at, first_seen_at)
			VALUES ($1, $2, $3, $4, $5)
		`, record.ID, string(planA), string(planB), submittedAt, time.Now().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("%w: insert participant: %v", ErrUnavailable, err)
		}
	case err != nil:
		return fmt.Errorf("%w: query participant: %v", ErrUnavailable, err)
	default:
		// Wholesale replacement; first_seen_at keeps the original
		// listing position.
		_, err = tx.Exec(`
			UPDATE participant
			SET plan_a = $1, plan_b = $2, submitted_at = $3
			WHERE id = $4
		`, string(planA), string(planB), submittedAt, record.ID)
		if err != nil {
			return fmt.Errorf("%w: update participant: %v", ErrUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLStore) SaveDraw(draw models.DrawRecord) error {
	assignments, err := json.Marshal(draw.Assignments)
	if err != nil {
		return fmt.Errorf("%w: encode assignments: %v", ErrUnavailable, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO draw (id, performed_at, assignments)
		VALUES ($1, $2, $3)
	`, draw.ID, draw.PerformedAt.Format(time.RFC3339Nano), string(assignments))
	if err != nil {
		return fmt.Errorf("%w: insert draw: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLStore) ListDraws() ([]models.DrawRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, performed_at, assignments
		FROM draw
		ORDER BY performed_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: query draws: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	draws := []models.DrawRecord{}
	for rows.Next() {
		draw, err := scanDraw(rows)
		if err != nil {
			return nil, err
		}
		draws = append(draws, draw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate draws: %v", ErrUnavailable, err)
	}
	return draws, nil
}

func (s *SQLStore) LatestDraw() (models.DrawRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, performed_at, assignments
		FROM draw
		ORDER BY performed_at DESC, id
		LIMIT 1
	`)

	draw, err := scanDraw(row)
	if err == sql.ErrNoRows {
		return models.DrawRecord{}, ErrNoDraws
	}
	if err != nil {
		return models.DrawRecord{}, err
	}
	return draw, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraw(row rowScanner) (models.DrawRecord, error) {
	var performedAt, assignments string
	var draw models.DrawRecord

	if err := row.Scan(&draw.ID, &performedAt, &assignments); err != nil {
		if err == sql.ErrNoRows {
			return models.DrawRecord{}, err
		}
		return models.DrawRecord{}, fmt.Errorf("%w: scan draw: %v", ErrUnavailable, err)
	}

	var err error
	draw.PerformedAt, err = time.Parse(time.RFC3339Nano, performedAt)
	if err != nil {
		return models.DrawRecord{}, fmt.Errorf("%w: parse performed_at for %s: %v", ErrUnavailable, draw.ID, err)
	}
	if err := json.Unmarshal([]byte(assignments), &draw.Assignments); err != nil {
		return models.DrawRecord{}, fmt.Errorf("%w: decode assignments for %s: %v", ErrUnavailable, draw.ID, err)
	}
	return draw, nil
}
