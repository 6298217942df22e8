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

type AllocationHandler struct {
	db *sql.DB
}

func NewAllocationHandler(db *sql.DB) *AllocationHandler {
	return &AllocationHandler{db: db}
}

// Submit handles POST /allocations
//
// A submission is a complete budget distribution: every entry names a
// player and the points must sum to exactly 100. All rows are written in
// one transaction keyed on (user_id, player_id), so resubmitting updates
// rows in place and a failed batch leaves nothing behind.
func (h *AllocationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAllocationsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validation order matters: field presence, then per-entry player_id,
	// then the budget total. Nothing is written until all three pass.
	if req.Name == "" || req.Email == "" || len(req.Allocations) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "required fields missing")
		return
	}

	total := 0
	for _, entry := range req.Allocations {
		if entry.PlayerID == nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "player_id missing")
			return
		}
		total += int(entry.PointsAllocated)
	}

	if total != models.AllocationBudget {
		middleware.ErrorResponse(w, http.StatusBadRequest, "total must equal 100")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	user, err := resolveUser(tx, req.Name, req.Email)
	if err != nil {
		slog.Error("failed to resolve user", "error", err, "email", req.Email)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save allocations")
		return
	}

	for _, entry := range req.Allocations {
		_, err = tx.Exec(`
			INSERT INTO allocations (user_id, player_id, points_allocated)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, player_id)
			DO UPDATE SET points_allocated = excluded.points_allocated
		`, user.ID, *entry.PlayerID, int(entry.PointsAllocated))
		if err != nil {
			// An unknown player_id trips the foreign key here; the whole
			// submission rolls back and the cause stays in the logs.
			slog.Error("failed to upsert allocation",
				"error", err, "user_id", user.ID, "player_id", *entry.PlayerID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save allocations")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit allocations", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save allocations")
		return
	}

	slog.Info("allocations submitted", "user_id", user.ID, "entries", len(req.Allocations))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitAllocationsResponse{User: user})
}
