// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/gift-draw/models"
)

func testRecord(id string, priceA models.Price) models.ParticipantRecord {
	return models.ParticipantRecord{
		ID:        id,
		PlanA:     models.Plan{Games: []string{"Game1", "Game2"}, Price: priceA},
		PlanB:     models.Plan{Games: []string{"Game3", "Game4"}, Price: 280},
		Timestamp: time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC),
	}
}

func testDraw(id string, at time.Time) models.DrawRecord {
	return models.DrawRecord{
		ID:          id,
		PerformedAt: at,
		Assignments: []models.DrawAssignment{
			{Giver: "alice", Receiver: "bob", Plan: models.PlanA},
			{Giver: "bob", Receiver: "alice", Plan: models.PlanB},
		},
	}
}

func TestNewJSONStoreInitializesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")

	st, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer st.Close()

	for _, p := range []string{path, filepath.Join(dir, "draws.json")} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("Expected %s to exist: %v", p, err)
		}
		if string(data) != "[]" {
			t.Errorf("Expected %s initialized to empty array, got %q", p, data)
		}
	}

	records, err := st.ListParticipants()
	if err != nil {
		t.Fatalf("Failed to list participants: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty store, got %d records", len(records))
	}
}

func TestJSONStoreUpsert(t *testing.T) {
	st, err := NewJSONStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	for _, id := range []string{"alice", "bob", "carol"} {
		if err := st.UpsertParticipant(testRecord(id, 300)); err != nil {
			t.Fatalf("Failed to upsert %q: %v", id, err)
		}
	}

	// Replace alice; her listing position must not move
	if err := st.UpsertParticipant(testRecord("alice", 260)); err != nil {
		t.Fatalf("Failed to resubmit alice: %v", err)
	}

	records, err := st.ListParticipants()
	if err != nil {
		t.Fatalf("Failed to list participants: %v", err)
	}

	want := []string{"alice", "bob", "carol"}
	if len(records) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(records))
	}
	for i, id := range want {
		if records[i].ID != id {
			t.Errorf("Position %d: expected %q, got %q", i, id, records[i].ID)
		}
	}
	if records[0].PlanA.Price != 260 {
		t.Errorf("Expected replaced price 260, got %v", records[0].PlanA.Price)
	}
}

func TestJSONStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	st, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := st.UpsertParticipant(testRecord("alice", 300)); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if err := st.SaveDraw(testDraw("draw-1", time.Now())); err != nil {
		t.Fatalf("Failed to save draw: %v", err)
	}

	// Reopen the same files
	st2, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}

	records, err := st2.ListParticipants()
	if err != nil {
		t.Fatalf("Failed to list participants: %v", err)
	}
	if len(records) != 1 || records[0].ID != "alice" {
		t.Fatalf("Expected alice to survive reopen, got %+v", records)
	}
	if !records[0].Timestamp.Equal(testRecord("alice", 300).Timestamp) {
		t.Errorf("Timestamp not preserved: got %v", records[0].Timestamp)
	}

	draw, err := st2.LatestDraw()
	if err != nil {
		t.Fatalf("Failed to load latest draw: %v", err)
	}
	if draw.ID != "draw-1" || len(draw.Assignments) != 2 {
		t.Errorf("Draw not preserved: %+v", draw)
	}
}

func TestJSONStoreDrawHistory(t *testing.T) {
	st, err := NewJSONStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if _, err := st.LatestDraw(); !errors.Is(err, ErrNoDraws) {
		t.Fatalf("Expected ErrNoDraws on empty history, got %v", err)
	}

	base := time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC)
	for i, id := range []string{"draw-1", "draw-2", "draw-3"} {
		if err := st.SaveDraw(testDraw(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Failed to save %q: %v", id, err)
		}
	}

	draws, err := st.ListDraws()
	if err != nil {
		t.Fatalf("Failed to list draws: %v", err)
	}
	if len(draws) != 3 {
		t.Fatalf("Expected 3 draws, got %d", len(draws))
	}
	// Newest first
	if draws[0].ID != "draw-3" || draws[2].ID != "draw-1" {
		t.Errorf("Expected newest-first ordering, got %q, %q, %q", draws[0].ID, draws[1].ID, draws[2].ID)
	}

	latest, err := st.LatestDraw()
	if err != nil {
		t.Fatalf("Failed to load latest draw: %v", err)
	}
	if latest.ID != "draw-3" {
		t.Errorf("Expected latest draw draw-3, got %q", latest.ID)
	}
}

func TestJSONStoreReadsLegacyStringPrices(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")

	// Data written by the original deployment: string prices
	legacy := `[
		{
			"id": "alice",
			"planA": {"games": ["Game1", "Game2"], "price": "300"},
			"planB": {"games": ["Game3", "Game4"], "price": 280},
			"timestamp": "2024-12-01T10:00:00.000Z"
		}
	]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}

	st, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}

	records, err := st.ListParticipants()
	if err != nil {
		t.Fatalf("Failed to list participants: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].PlanA.Price != 300 {
		t.Errorf("Expected string price parsed to 300, got %v", records[0].PlanA.Price)
	}
	if records[0].PlanB.Price != 280 {
		t.Errorf("Expected numeric price 280, got %v", records[0].PlanB.Price)
	}
}

func TestJSONStoreUnavailable(t *testing.T) {
	st, err := NewJSONStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	// Corrupt the backing file
	if err := os.WriteFile(st.participantsPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to corrupt file: %v", err)
	}

	if _, err := st.ListParticipants(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for corrupt file, got %v", err)
	}
	if err := st.UpsertParticipant(testRecord("alice", 300)); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for upsert on corrupt file, got %v", err)
	}
}
