// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/openterrace/clubpoints/db"
	"github.com/openterrace/clubpoints/middleware"
	"github.com/openterrace/clubpoints/models"
)

type VoteHandler struct {
	db *sql.DB
}

func NewVoteHandler(db *sql.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

// Cast handles POST /matches/{id}/votes
//
// One vote per (match, email): casting again overwrites the chosen
// player and refreshes the timestamp. Uniqueness keys on the raw email,
// not the resolved user id; identity resolution only makes sure the
// voter exists in the users table.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid match id")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.PlayerID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name, email and player_id are required")
		return
	}

	var exists int64
	err = h.db.QueryRow(`
		SELECT id FROM matches WHERE id = $1
	`, matchID).Scan(&exists)
	if db.IsNotFound(err) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to query match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := resolveUser(tx, req.Name, req.Email); err != nil {
		slog.Error("failed to resolve user", "error", err, "email", req.Email)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	// No squad check: the chosen player is not validated against the
	// match lineup, only against the players table via the foreign key.
	_, err = tx.Exec(`
		INSERT INTO potm_votes (match_id, email, player_id, voted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (match_id, email)
		DO UPDATE SET player_id = excluded.player_id, voted_at = excluded.voted_at
	`, matchID, req.Email, *req.PlayerID, time.Now())
	if err != nil {
		slog.Error("failed to upsert vote",
			"error", err, "match_id", matchID, "player_id", *req.PlayerID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit vote", "error", err, "match_id", matchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "match_id", matchID, "player_id", *req.PlayerID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{OK: true})
}

// Results handles GET /matches/{id}/results
//
// Tallies the match's votes over the full roster: every registered
// player appears exactly once, zero-vote players included. Ordered by
// votes descending, then player name ascending.
func (h *VoteHandler) Results(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid match id")
		return
	}

	rows, err := h.db.Query(`
		SELECT p.id, p.name, COUNT(v.id) AS votes
		FROM players p
		LEFT JOIN potm_votes v ON v.player_id = p.id AND v.match_id = $1
		GROUP BY p.id, p.name
		ORDER BY votes DESC, p.name ASC
	`, matchID)
	if err != nil {
		slog.Error("failed to query match results", "error", err, "match_id", matchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.MatchResultRow{}
	for rows.Next() {
		var row models.MatchResultRow
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &row.Votes); err != nil {
			slog.Error("failed to scan result row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, row)
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
