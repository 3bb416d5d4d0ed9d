// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Gift Draw API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ParticipantHandler: plan submission and listing
  - DrawHandler: performing draws and draw history
  - IdentityHandler: nickname → role classification

Handlers are created via constructor functions that accept a store.Store
and Config:

	participantHandler := handlers.NewParticipantHandler(st, cfg)

# Submission Flow

	GET  /users → List (full participant snapshot)
	POST /users → Submit (insert or replace by nickname)

A submission must carry id, planA and planB. Plans are validated by
ValidatePlans before anything is written: two non-empty game names per
plan and a price in [250, 350]. Resubmitting under the same nickname
replaces the prior record wholesale.

# Draw Flow

	POST /draws        → Perform (administrator only, X-Nickname header)
	GET  /draws        → List (history, newest first)
	GET  /draws/latest → Latest

# Draw Algorithm

The assignment algorithm is implemented in draw.go:

	assignments, err := ComputeDrawAssignments(participants, rng)

It uniformly shuffles the participant snapshot and assigns each giver
the next participant in the shuffled order (wrapping around), producing
a single cycle over the whole group, then flips a fair coin per
assignment between plan A and B. Fewer than two participants fail with
ErrInsufficientParticipants.
*/
package handlers
