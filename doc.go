// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Gift Draw API server.

Gift Draw runs a small group's Steam gift exchange: everyone registers
two candidate gift plans (two game titles plus a price between 250 and
350) under a nickname, and the administrator triggers a random draw that
assigns each participant a receiver and one of their two plans.

# Starting the Server

The default flat-file store needs no configuration:

	go run .

Or with a SQL store:

	go run . -t sqlite -d "file:gift-draw.db"
	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded on startup.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - STORE_TYPE (-t): json, sqlite or postgres (default: json)
  - STORE_PATH (-f): flat-file path (default: ./users.json)
  - DATABASE_URL (-d): required for sqlite/postgres
  - ADMIN_NICKNAME (-admin): draw-triggering nickname (default: shiwei)
  - ALLOWED_ORIGIN (-origin): CORS origin (default: http://localhost:3001)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers, plan validation, draw algorithm
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Nickname → role classification
  - store: Flat-file and SQL participant stores
  - db: SQL schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
