// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the clubpoints API.

# Handler Types

Each handler is a struct with a database dependency:

  - PlayerHandler: Roster listing, creation, point adjustment
  - MatchHandler: Fixture listing and creation
  - AllocationHandler: 100-point budget submission
  - LeaderboardHandler: Portfolio score ranking
  - VoteHandler: POTM vote casting and per-match results

Handlers are created via constructor functions that accept *sql.DB:

	playerHandler := handlers.NewPlayerHandler(db)

# Allocation Flow

A submission is the user's complete budget:

	POST /allocations → Submit

Validation runs in a fixed order (fields present, every entry has a
player_id, points sum to exactly 100) before anything is written. The
writes are upserts keyed on (user_id, player_id) inside one transaction:
resubmitting replaces point values in place, and any failure — such as
an unknown player id — rolls back the entire batch.

# Voting Flow

One vote per (match, email), latest choice wins:

	POST /matches/{id}/votes  → Cast
	GET  /matches/{id}/results → Results

Results cover the whole roster, zero-vote players included.

# Identity

Both write paths resolve the client-supplied email to a user row via
resolveUser, creating it on first contact inside the same transaction.
A duplicate-email conflict from a racing writer is retried as a lookup.

# Scoring

The leaderboard is a pure read:

	GET /leaderboard → Get

portfolio_points = Σ points_allocated × player.total_points / 100,
descending, ties broken by user id, capped at 100 rows.
*/
package handlers
