// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the clubpoints API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Player registry:

	GET  /players             - List roster (id ascending)
	POST /players             - Create player
	POST /players/{id}/points - Set and/or shift total_points

Allocation game:

	POST /allocations - Submit a complete 100-point distribution
	GET  /leaderboard - Ranked portfolio scores (top 100)

Matches and POTM poll:

	GET  /matches              - List fixtures (newest first)
	POST /matches              - Create fixture
	POST /matches/{id}/votes   - Cast/replace a POTM vote
	GET  /matches/{id}/results - Per-player vote tally

# Handler Initialization

The router creates handler instances with dependency injection:

	playerHandler := handlers.NewPlayerHandler(db)
	matchHandler := handlers.NewMatchHandler(db)
	allocationHandler := handlers.NewAllocationHandler(db)
	leaderboardHandler := handlers.NewLeaderboardHandler(db)
	voteHandler := handlers.NewVoteHandler(db)

All handlers receive the shared database connection.
*/
package router
