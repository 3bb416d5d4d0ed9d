// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/db"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/store"
)

// SetupTestStore creates a flat-file store in a per-test temp directory
func SetupTestStore(t *testing.T) *store.JSONStore {
	t.Helper()

	st, err := store.NewJSONStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return st
}

// SetupTestDB creates a throwaway SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "gift-draw.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		StoreType:     cliparse.StoreJSON,
		StorePath:     "./users.json",
		AdminNickname: "shiwei",
		AllowedOrigin: "http://localhost:3001",
	}
}

// MakeParticipant builds a valid participant record for the given nickname
func MakeParticipant(id string) models.ParticipantRecord {
	return models.ParticipantRecord{
		ID: id,
		PlanA: models.Plan{
			Games: []string{id + " game 1", id + " game 2"},
			Price: 300,
		},
		PlanB: models.Plan{
			Games: []string{id + " game 3", id + " game 4"},
			Price: 280,
		},
		Timestamp: time.Now(),
	}
}

// SeedParticipants upserts a valid record for each nickname
func SeedParticipants(t *testing.T, st store.Store, ids ...string) {
	t.Helper()

	for _, id := range ids {
		if err := st.UpsertParticipant(MakeParticipant(id)); err != nil {
			t.Fatalf("Failed to seed participant %q: %v", id, err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertSingleCycle verifies that the assignments form exactly one
// directed cycle covering every giver
func AssertSingleCycle(t *testing.T, assignments []models.DrawAssignment) {
	t.Helper()

	if len(assignments) == 0 {
		t.Fatal("Expected at least one assignment")
	}

	next := make(map[string]string, len(assignments))
	for _, a := range assignments {
		if _, dup := next[a.Giver]; dup {
			t.Fatalf("Giver %q appears more than once", a.Giver)
		}
		next[a.Giver] = a.Receiver
	}

	start := assignments[0].Giver
	current := start
	for i := 0; i < len(assignments); i++ {
		receiver, ok := next[current]
		if !ok {
			t.Fatalf("Receiver chain broke at %q", current)
		}
		current = receiver
		if current == start && i != len(assignments)-1 {
			t.Fatalf("Receiver chain returned to start after %d steps, expected %d", i+1, len(assignments))
		}
	}
	if current != start {
		t.Fatalf("Receiver chain did not return to start (ended at %q)", current)
	}
}
