// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/openterrace/clubpoints/db"
	"github.com/openterrace/clubpoints/middleware"
	"github.com/openterrace/clubpoints/models"
)

type PlayerHandler struct {
	db *sql.DB
}

func NewPlayerHandler(db *sql.DB) *PlayerHandler {
	return &PlayerHandler{db: db}
}

// List handles GET /players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, club, photo_url, total_points
		FROM players
		ORDER BY id
	`)
	if err != nil {
		slog.Error("failed to query players", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Club, &p.PhotoURL, &p.TotalPoints); err != nil {
			slog.Error("failed to scan player", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		players = append(players, p)
	}

	middleware.JSONResponse(w, http.StatusOK, players)
}

// Create handles POST /players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	// club and photo_url default to empty strings
	var id int64
	err := h.db.QueryRow(`
		INSERT INTO players (name, club, photo_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Name, req.Club, req.PhotoURL).Scan(&id)
	if err != nil {
		slog.Error("failed to insert player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create player")
		return
	}

	slog.Info("player created", "player_id", id, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePlayerResponse{ID: id})
}

// AdjustPoints handles POST /players/{id}/points
// "set" applies first, then "delta"; both may appear in one call.
func (h *PlayerHandler) AdjustPoints(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid player id")
		return
	}

	var req models.AdjustPointsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Single UPDATE per shape so concurrent deltas never lose an update;
	// a read-modify-write here would let two {delta} calls clobber each other.
	var total int
	switch {
	case req.Set != nil && req.Delta != nil:
		err = h.db.QueryRow(`
			UPDATE players SET total_points = $1 + $2 WHERE id = $3
			RETURNING total_points
		`, *req.Set, *req.Delta, playerID).Scan(&total)
	case req.Set != nil:
		err = h.db.QueryRow(`
			UPDATE players SET total_points = $1 WHERE id = $2
			RETURNING total_points
		`, *req.Set, playerID).Scan(&total)
	case req.Delta != nil:
		err = h.db.QueryRow(`
			UPDATE players SET total_points = total_points + $1 WHERE id = $2
			RETURNING total_points
		`, *req.Delta, playerID).Scan(&total)
	default:
		err = h.db.QueryRow(`
			SELECT total_points FROM players WHERE id = $1
		`, playerID).Scan(&total)
	}
	if db.IsNotFound(err) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		slog.Error("failed to adjust player points", "error", err, "player_id", playerID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to adjust points")
		return
	}

	slog.Info("player points adjusted", "player_id", playerID, "total_points", total)

	middleware.JSONResponse(w, http.StatusOK, models.AdjustPointsResponse{
		ID:          playerID,
		TotalPoints: total,
	})
}
