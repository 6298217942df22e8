// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/openterrace/clubpoints/middleware"
	"github.com/openterrace/clubpoints/models"
)

type LeaderboardHandler struct {
	db *sql.DB
}

func NewLeaderboardHandler(db *sql.DB) *LeaderboardHandler {
	return &LeaderboardHandler{db: db}
}

// Get handles GET /leaderboard
//
// Portfolio score per user: sum of points_allocated × player total,
// normalized by the 100-point budget. Recomputed from current state on
// every call so point adjustments show up immediately. Users who have
// never allocated still rank, at 0.
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT u.id, u.name, u.email,
		       COALESCE(SUM(a.points_allocated * p.total_points / 100.0), 0) AS portfolio_points
		FROM users u
		LEFT JOIN allocations a ON a.user_id = u.id
		LEFT JOIN players p ON p.id = a.player_id
		GROUP BY u.id, u.name, u.email
		ORDER BY portfolio_points DESC, u.id ASC
		LIMIT 100
	`)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Email, &e.PortfolioPoints); err != nil {
			slog.Error("failed to scan leaderboard entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
