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

type MatchHandler struct {
	db *sql.DB
}

func NewMatchHandler(db *sql.DB) *MatchHandler {
	return &MatchHandler{db: db}
}

// List handles GET /matches
// Newest fixtures first: date descending, then id descending.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, match_date, opponent, home_away, status
		FROM matches
		ORDER BY match_date DESC, id DESC
	`)
	if err != nil {
		slog.Error("failed to query matches", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.Date, &m.Opponent, &m.HomeAway, &m.Status); err != nil {
			slog.Error("failed to scan match", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		matches = append(matches, m)
	}

	middleware.JSONResponse(w, http.StatusOK, matches)
}

// Create handles POST /matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Date == "" || req.Opponent == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date and opponent are required")
		return
	}

	if req.HomeAway == "" {
		req.HomeAway = models.HomeAwayHome
	}
	if req.HomeAway != models.HomeAwayHome && req.HomeAway != models.HomeAwayAway {
		middleware.ErrorResponse(w, http.StatusBadRequest, "home_away must be home or away")
		return
	}

	if req.Status == "" {
		req.Status = models.StatusFinal
	}
	switch req.Status {
	case models.StatusUpcoming, models.StatusLive, models.StatusFinal:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be upcoming, live or final")
		return
	}

	var id int64
	err := h.db.QueryRow(`
		INSERT INTO matches (match_date, opponent, home_away, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Date, req.Opponent, req.HomeAway, req.Status).Scan(&id)
	if err != nil {
		slog.Error("failed to insert match", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create match")
		return
	}

	slog.Info("match created", "match_id", id, "opponent", req.Opponent)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMatchResponse{ID: id})
}
