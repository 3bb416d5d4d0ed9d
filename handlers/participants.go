// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
	"github.com/danielhkuo/gift-draw/store"
)

type ParticipantHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewParticipantHandler(st store.Store, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{store: st, cfg: cfg}
}

// List handles GET /users
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListParticipants()
	if err != nil {
		slog.Error("failed to list participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Participant store unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// Submit handles POST /users
// Inserts or wholesale-replaces the record for the submitted nickname.
func (h *ParticipantHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitPlanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Required fields
	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}
	if req.PlanA == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "planA is required")
		return
	}
	if req.PlanB == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "planB is required")
		return
	}

	// All validation happens before any mutation; a rejected submission
	// never touches the store.
	if err := ValidatePlans(*req.PlanA, *req.PlanB); err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill in all game names")
		case errors.Is(err, ErrPriceOutOfRange):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	record := models.ParticipantRecord{
		ID:        req.ID,
		PlanA:     *req.PlanA,
		PlanB:     *req.PlanB,
		Timestamp: req.Timestamp,
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	if err := h.store.UpsertParticipant(record); err != nil {
		slog.Error("failed to upsert participant", "error", err, "id", record.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	slog.Info("plans submitted", "id", record.ID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitPlanResponse{
		Success: true,
		Message: "Plans submitted successfully",
	})
}
