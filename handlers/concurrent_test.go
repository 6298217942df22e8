// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/openterrace/clubpoints/models"
	"github.com/openterrace/clubpoints/testutil"
)

// TestConcurrentFirstContactSubmissions verifies that simultaneous
// submissions for the same never-seen email create exactly one user row
// and leave a consistent allocation set
func TestConcurrentFirstContactSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAllocationHandler(db)
	playerA := testutil.CreateTestPlayer(t, db, "Marco Silva", 80)
	playerB := testutil.CreateTestPlayer(t, db, "Deniz Kaya", 20)

	numSubmitters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	// Every goroutine submits for the same email with a different split
	for i := 0; i < numSubmitters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			pts := idx * 10
			body := models.SubmitAllocationsRequest{
				Name:  "Racer" + string(rune('A'+idx)),
				Email: "racer@example.com",
				Allocations: []models.AllocationEntry{
					allocationEntry(playerA, pts),
					allocationEntry(playerB, 100-pts),
				},
			}
			req := testutil.MakeRequest("POST", "/allocations", body, nil)
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	// All submissions should succeed; the losers of the identity race
	// must recover, not surface an error
	if int(successCount.Load()) != numSubmitters {
		t.Errorf("Expected %d successful submissions, got %d", numSubmitters, successCount.Load())
	}

	// Exactly one user row for the contested email
	var userCount int
	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", "racer@example.com").Scan(&userCount)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if userCount != 1 {
		t.Errorf("Expected 1 user row, got %d", userCount)
	}

	// One allocation row per player and a full 100-point budget: some
	// submission won whole, none was torn
	var rowCount, total int
	err = db.QueryRow(`
		SELECT COUNT(*), SUM(a.points_allocated)
		FROM allocations a
		JOIN users u ON u.id = a.user_id
		WHERE u.email = $1
	`, "racer@example.com").Scan(&rowCount, &total)
	if err != nil {
		t.Fatalf("Failed to sum allocations: %v", err)
	}
	if rowCount != 2 {
		t.Errorf("Expected 2 allocation rows, got %d", rowCount)
	}
	if total != 100 {
		t.Errorf("Expected allocations to sum to 100, got %d", total)
	}
}

// TestConcurrentFirstTimeVotes verifies that simultaneous first-time
// votes from the same email end up as a single user row and a single
// vote for the match
func TestConcurrentFirstTimeVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewVoteHandler(db)
	matchID := testutil.CreateTestMatch(t, db, "2026-02-14", "Rovers")

	numVoters := 10
	playerIDs := make([]int64, numVoters)
	for i := 0; i < numVoters; i++ {
		playerIDs[i] = testutil.CreateTestPlayer(t, db, "Candidate"+string(rune('A'+i)), 0)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w := castVote(t, handler, matchID, "Racer", "voter-race@example.com", playerIDs[idx])
			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	var userCount int
	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", "voter-race@example.com").Scan(&userCount)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if userCount != 1 {
		t.Errorf("Expected 1 user row, got %d", userCount)
	}

	// One vote per (match, email) no matter how many casts raced
	var voteCount int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM potm_votes WHERE match_id = $1 AND email = $2
	`, matchID, "voter-race@example.com").Scan(&voteCount)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if voteCount != 1 {
		t.Errorf("Expected 1 vote row, got %d", voteCount)
	}
}

// TestConcurrentPointAdjustments verifies that racing delta adjustments
// never lose an update
func TestConcurrentPointAdjustments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPlayerHandler(db)
	playerID := testutil.CreateTestPlayer(t, db, "Marco Silva", 40)
	playerPath := strconv.FormatInt(playerID, 10)

	numAdjustments := 20
	var wg sync.WaitGroup

	for i := 0; i < numAdjustments; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			delta := 1
			body := models.AdjustPointsRequest{Delta: &delta}
			req := testutil.MakeRequest("POST", "/players/"+playerPath+"/points", body, nil)
			req.SetPathValue("id", playerPath)
			w := httptest.NewRecorder()

			handler.AdjustPoints(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Adjustment failed with status %d", w.Code)
			}
		}()
	}

	wg.Wait()

	var total int
	err := db.QueryRow("SELECT total_points FROM players WHERE id = $1", playerID).Scan(&total)
	if err != nil {
		t.Fatalf("Failed to query player: %v", err)
	}
	if total != 40+numAdjustments {
		t.Errorf("Expected total_points %d, got %d", 40+numAdjustments, total)
	}
}

// TestConcurrentResubmissions verifies that one user resubmitting their
// allocation concurrently ends in a consistent final state
func TestConcurrentResubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAllocationHandler(db)
	playerA := testutil.CreateTestPlayer(t, db, "Marco Silva", 80)
	playerB := testutil.CreateTestPlayer(t, db, "Deniz Kaya", 20)

	// Seed an initial submission so every racer is an update
	initial := models.SubmitAllocationsRequest{
		Name:  "Resub",
		Email: "resub@example.com",
		Allocations: []models.AllocationEntry{
			allocationEntry(playerA, 50),
			allocationEntry(playerB, 50),
		},
	}
	req := testutil.MakeRequest("POST", "/allocations", initial, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, 201)

	numUpdates := 10
	var wg sync.WaitGroup

	for i := 0; i < numUpdates; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			pts := idx * 5
			body := models.SubmitAllocationsRequest{
				Name:  "Resub",
				Email: "resub@example.com",
				Allocations: []models.AllocationEntry{
					allocationEntry(playerA, 100-pts),
					allocationEntry(playerB, pts),
				},
			}
			req := testutil.MakeRequest("POST", "/allocations", body, nil)
			w := httptest.NewRecorder()
			handler.Submit(w, req)
			// Whichever update wins, the final state must be whole
		}(i)
	}

	wg.Wait()

	var rowCount, total int
	err := db.QueryRow(`
		SELECT COUNT(*), SUM(a.points_allocated)
		FROM allocations a
		JOIN users u ON u.id = a.user_id
		WHERE u.email = $1
	`, "resub@example.com").Scan(&rowCount, &total)
	if err != nil {
		t.Fatalf("Failed to sum allocations: %v", err)
	}
	if rowCount != 2 {
		t.Errorf("Expected 2 allocation rows after updates, got %d", rowCount)
	}
	if total != 100 {
		t.Errorf("Expected allocations to sum to 100, got %d", total)
	}
}
