// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openterrace/clubpoints/db"
)

// TestDBURL opens an in-memory SQLite database with foreign key
// enforcement on, so the suite needs no external services.
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// SetupTestDB creates a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every pooled connection would get its own in-memory database;
	// pin the pool to one so all queries see the same schema.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestPlayer inserts a player and returns its ID.
func CreateTestPlayer(t *testing.T, conn *sql.DB, name string, totalPoints int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO players (name, club, total_points)
		VALUES ($1, 'Test FC', $2)
		RETURNING id
	`, name, totalPoints).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	return id
}

// CreateTestMatch inserts a match and returns its ID.
func CreateTestMatch(t *testing.T, conn *sql.DB, date, opponent string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO matches (match_date, opponent, home_away, status)
		VALUES ($1, $2, 'home', 'final')
		RETURNING id
	`, date, opponent).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test match: %v", err)
	}

	return id
}

// CreateTestUser inserts a user and returns its ID.
func CreateTestUser(t *testing.T, conn *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, email, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CastTestVote inserts a vote directly, bypassing the handler.
func CastTestVote(t *testing.T, conn *sql.DB, matchID int64, email string, playerID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO potm_votes (match_id, email, player_id, voted_at)
		VALUES ($1, $2, $3, $4)
	`, matchID, email, playerID, time.Now())
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
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
