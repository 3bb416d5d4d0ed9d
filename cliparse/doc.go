// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - StoreType: json, sqlite or postgres (default: json)
  - StorePath: flat-file path for the json store (default: ./users.json)
  - DatabaseURL: connection string, required for sqlite/postgres
  - AdminNickname: nickname that unlocks the draw (default: shiwei)
  - AllowedOrigin: CORS origin (default: http://localhost:3001)

# CLI Flags

	-p       Server port
	-t       Store type
	-f       Flat-file path
	-d       Database URL
	-admin   Administrator nickname
	-origin  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_TYPE     → -t
	STORE_PATH     → -f
	DATABASE_URL   → -d
	ADMIN_NICKNAME → -admin
	ALLOWED_ORIGIN → -origin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is set but not numeric
  - the store type is not json, sqlite or postgres
  - a sqlite/postgres store is selected without DATABASE_URL
*/
package cliparse
