// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/openterrace/clubpoints/testutil"
)

func TestResolveUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	t.Run("creates user on first contact", func(t *testing.T) {
		tx, err := conn.Begin()
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		u, err := resolveUser(tx, "Alice", "alice@example.com")
		if err != nil {
			t.Fatalf("resolveUser failed: %v", err)
		}
		if u.ID == 0 {
			t.Error("Expected a non-zero user ID")
		}
		if u.Name != "Alice" || u.Email != "alice@example.com" {
			t.Errorf("Unexpected user: %+v", u)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("Failed to commit: %v", err)
		}

		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", "alice@example.com").Scan(&count); err != nil {
			t.Fatalf("Failed to count users: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 user row, got %d", count)
		}
	})

	t.Run("existing email keeps stored name", func(t *testing.T) {
		id := testutil.CreateTestUser(t, conn, "Bob", "bob@example.com")

		tx, err := conn.Begin()
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		u, err := resolveUser(tx, "Robert", "bob@example.com")
		if err != nil {
			t.Fatalf("resolveUser failed: %v", err)
		}
		if u.ID != id {
			t.Errorf("Expected user ID %d, got %d", id, u.ID)
		}
		if u.Name != "Bob" {
			t.Errorf("Expected stored name 'Bob', got %q", u.Name)
		}
	})

	t.Run("conflicting insert leaves transaction usable", func(t *testing.T) {
		// The race loser's position: the row appeared after its existence
		// check missed. The upsert must report no row without aborting the
		// transaction, so the follow-up read and later writes still work.
		id := testutil.CreateTestUser(t, conn, "Dana", "dana@example.com")

		tx, err := conn.Begin()
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		var insertedID int64
		err = tx.QueryRow(`
			INSERT INTO users (name, email, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO NOTHING
			RETURNING id
		`, "Imposter", "dana@example.com", time.Now()).Scan(&insertedID)
		if err != sql.ErrNoRows {
			t.Fatalf("Expected sql.ErrNoRows from conflicting insert, got %v", err)
		}

		u, err := resolveUser(tx, "Imposter", "dana@example.com")
		if err != nil {
			t.Fatalf("resolveUser failed after conflict: %v", err)
		}
		if u.ID != id {
			t.Errorf("Expected user ID %d, got %d", id, u.ID)
		}
		if u.Name != "Dana" {
			t.Errorf("Expected stored name 'Dana', got %q", u.Name)
		}

		var one int
		if err := tx.QueryRow("SELECT 1").Scan(&one); err != nil {
			t.Fatalf("Transaction unusable after conflicting insert: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("Failed to commit after conflict: %v", err)
		}

		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", "dana@example.com").Scan(&count); err != nil {
			t.Fatalf("Failed to count users: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 user row, got %d", count)
		}
	})
}
