// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/store"
)

type DrawHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewDrawHandler(st store.Store, cfg cliparse.Config) *DrawHandler {
	return &DrawHandler{store: st, cfg: cfg}
}

// Perform handles POST /draws
// Only the administrator nickname (X-Nickname header) may trigger a draw.
func (h *DrawHandler) Perform(w http.ResponseWriter, r *http.Request) {
	nickname := r.Header.Get("X-Nickname")

	role, err := auth.Classify(nickname, h.cfg.AdminNickname)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Nickname header required")
		return
	}
	if role != models.RoleAdministrator {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the administrator can perform a draw")
		return
	}

	// One snapshot read; the computation itself holds no store lock.
	participants, err := h.store.ListParticipants()
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Participant store unavailable")
		return
	}

	assignments, err := ComputeDrawAssignments(participants, newRNG())
	if err != nil {
		if errors.Is(err, ErrInsufficientParticipants) {
			middleware.ErrorResponse(w, http.StatusConflict, "At least two participants are required for a draw")
			return
		}
		slog.Error("failed to compute draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute draw")
		return
	}

	draw := models.DrawRecord{
		ID:          uuid.NewString(),
		PerformedAt: time.Now(),
		Assignments: assignments,
	}

	if err := h.store.SaveDraw(draw); err != nil {
		slog.Error("failed to save draw", "error", err, "draw_id", draw.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save draw")
		return
	}

	slog.Info("draw performed", "draw_id", draw.ID, "participants", len(participants))

	middleware.JSONResponse(w, http.StatusCreated, draw)
}

// List handles GET /draws
func (h *DrawHandler) List(w http.ResponseWriter, r *http.Request) {
	draws, err := h.store.ListDraws()
	if err != nil {
		slog.Error("failed to list draws", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Draw history unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, draws)
}

// Latest handles GET /draws/latest
func (h *DrawHandler) Latest(w http.ResponseWriter, r *http.Request) {
	draw, err := h.store.LatestDraw()
	if err != nil {
		if errors.Is(err, store.ErrNoDraws) {
			middleware.ErrorResponse(w, http.StatusNotFound, "No draw has been performed yet")
			return
		}
		slog.Error("failed to load latest draw", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Draw history unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, draw)
}
