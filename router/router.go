// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/handlers"
	"github.com/danielhkuo/gift-draw/middleware"
	"github.com/danielhkuo/gift-draw/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(st, cfg)
	drawHandler := handlers.NewDrawHandler(st, cfg)
	identityHandler := handlers.NewIdentityHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participant registration (public)
	mux.HandleFunc("GET /users", middleware.WithLogging(participantHandler.List))
	mux.HandleFunc("POST /users", middleware.WithLogging(participantHandler.Submit))

	// Identity
	mux.HandleFunc("GET /me", middleware.WithLogging(identityHandler.GetMe))

	// Draws (Perform is restricted to the administrator nickname)
	mux.HandleFunc("POST /draws", middleware.WithLogging(drawHandler.Perform))
	mux.HandleFunc("GET /draws", middleware.WithLogging(drawHandler.List))
	mux.HandleFunc("GET /draws/latest", middleware.WithLogging(drawHandler.Latest))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gift-draw API v1"))
	})

	return mux
}
