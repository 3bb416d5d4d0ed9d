// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/danielhkuo/gift-draw/models"
)

// JSONStore keeps participants in a single flat JSON file that is fully
// rewritten on every upsert, matching the layout the original flat-file
// deployment used. Draw history lives in a sibling draws.json.
//
// A single mutex guards every read-modify-write cycle, so concurrent
// upserts cannot interleave and drop each other's writes.
type JSONStore struct {
	mu               sync.Mutex
	participantsPath string
	drawsPath        string
}

// NewJSONStore opens (and if needed initializes) the flat-file store.
// Both files are created as empty JSON arrays when absent.
func NewJSONStore(path string) (*JSONStore, error) {
	s := &JSONStore{
		participantsPath: path,
		drawsPath:        filepath.Join(filepath.Dir(path), "draws.json"),
	}

	for _, p := range []string{s.participantsPath, s.drawsPath} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			if err := os.WriteFile(p, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("%w: initialize %s: %v", ErrUnavailable, p, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("%w: stat %s: %v", ErrUnavailable, p, err)
		}
	}

	return s, nil
}

func (s *JSONStore) ListParticipants() ([]models.ParticipantRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readParticipants()
}

func (s *JSONStore) UpsertParticipant(record models.ParticipantRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readParticipants()
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return s.writeJSON(s.participantsPath, records)
}

func (s *JSONStore) SaveDraw(draw models.DrawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draws, err := s.readDraws()
	if err != nil {
		return err
	}

	// Newest first
	draws = append([]models.DrawRecord{draw}, draws...)

	return s.writeJSON(s.drawsPath, draws)
}

func (s *JSONStore) ListDraws() ([]models.DrawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readDraws()
}

func (s *JSONStore) LatestDraw() (models.DrawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draws, err := s.readDraws()
	if err != nil {
		return models.DrawRecord{}, err
	}
	if len(draws) == 0 {
		return models.DrawRecord{}, ErrNoDraws
	}
	return draws[0], nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) readParticipants() ([]models.ParticipantRecord, error) {
	data, err := os.ReadFile(s.participantsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.participantsPath, err)
	}

	var records []models.ParticipantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, s.participantsPath, err)
	}
	return records, nil
}

func (s *JSONStore) readDraws() ([]models.DrawRecord, error) {
	data, err := os.ReadFile(s.drawsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.drawsPath, err)
	}

	var draws []models.DrawRecord
	if err := json.Unmarshal(data, &draws); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, s.drawsPath, err)
	}
	return draws, nil
}

func (s *JSONStore) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, path, err)
	}
	return nil
}
