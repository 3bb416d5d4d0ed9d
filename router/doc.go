// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Gift Draw API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Participants (public):

	GET  /users - Full participant list
	POST /users - Submit or update plans

Identity:

	GET /me - Classify X-Nickname into a role

Draws:

	POST /draws        - Perform a draw (administrator only)
	GET  /draws        - Draw history, newest first
	GET  /draws/latest - Most recent draw

# Handler Initialization

The router creates handler instances with dependency injection:

	participantHandler := handlers.NewParticipantHandler(st, cfg)
	drawHandler := handlers.NewDrawHandler(st, cfg)
	identityHandler := handlers.NewIdentityHandler(cfg)

All handlers receive the participant store and configuration.
*/
package router
