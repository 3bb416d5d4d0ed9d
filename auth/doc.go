// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth classifies nicknames into roles.

# Roles

Classify compares a nickname against the configured administrator
nickname:

	role, err := auth.Classify(nickname, cfg.AdminNickname)

An exact (case-sensitive) match yields models.RoleAdministrator; any
other non-empty nickname yields models.RoleParticipant. An empty or
whitespace-only nickname fails with ErrInvalidIdentity.

# Security Model

There is deliberately no password, token, or session here. The service
runs among a small group of friends and the nickname is an honor-system
identifier. Anyone who knows the administrator nickname can trigger a
draw; swap this package for a real credential check before exposing the
service to strangers.
*/
package auth
