// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/gift-draw/auth"
	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/models"
)

type IdentityHandler struct {
	cfg cliparse.Config
}

func NewIdentityHandler(cfg cliparse.Config) *IdentityHandler {
	return &IdentityHandler{cfg: cfg}
}

// GetMe handles GET /me
// Classifies the X-Nickname header so the frontend knows whether to show
// the draw controls.
func (h *IdentityHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	nickname := r.Header.Get("X-Nickname")

	role, err := auth.Classify(nickname, h.cfg.AdminNickname)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Nickname header required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IdentityResponse{
		Nickname: strings.TrimSpace(nickname),
		Role:     role,
	})
}
