// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/openterrace/clubpoints/handlers"
	"github.com/openterrace/clubpoints/middleware"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(db)
	matchHandler := handlers.NewMatchHandler(db)
	allocationHandler := handlers.NewAllocationHandler(db)
	leaderboardHandler := handlers.NewLeaderboardHandler(db)
	voteHandler := handlers.NewVoteHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Player registry
	mux.HandleFunc("GET /players", middleware.WithLogging(playerHandler.List))
	mux.HandleFunc("POST /players", middleware.WithLogging(playerHandler.Create))
	mux.HandleFunc("POST /players/{id}/points", middleware.WithLogging(playerHandler.AdjustPoints))

	// Allocation game
	mux.HandleFunc("POST /allocations", middleware.WithLogging(allocationHandler.Submit))
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.Get))

	// Matches and POTM poll
	mux.HandleFunc("GET /matches", middleware.WithLogging(matchHandler.List))
	mux.HandleFunc("POST /matches", middleware.WithLogging(matchHandler.Create))
	mux.HandleFunc("POST /matches/{id}/votes", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("GET /matches/{id}/results", middleware.WithLogging(voteHandler.Results))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("clubpoints API v1"))
	})

	return mux
}
