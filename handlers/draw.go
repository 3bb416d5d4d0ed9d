// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"math/rand/v2"

	"github.com/danielhkuo/gift-draw/models"
)

var ErrInsufficientParticipants = errors.New("at least two participants are required for a draw")

// ComputeDrawAssignments produces the gift-exchange assignment for a
// snapshot of participants: a uniform Fisher-Yates shuffle followed by a
// cyclic next-neighbor pairing, so every participant gives exactly once,
// receives exactly once, and the whole group forms a single cycle. Each
// assignment independently picks plan A or B with a fair coin flip.
//
// The rng is injected so tests can seed it. Pure otherwise: the input
// slice is not modified and nothing is persisted here.
func ComputeDrawAssignments(participants []models.ParticipantRecord, rng *rand.Rand) ([]models.DrawAssignment, error) {
	n := len(participants)
	if n < 2 {
		// n == 1 would self-pair under the cyclic construction,
		// so it is rejected along with n == 0.
		return nil, ErrInsufficientParticipants
	}

	shuffled := make([]models.ParticipantRecord, n)
	copy(shuffled, participants)
	rng.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assignments := make([]models.DrawAssignment, n)
	for i, p := range shuffled {
		plan := models.PlanA
		if rng.IntN(2) == 1 {
			plan = models.PlanB
		}

		assignments[i] = models.DrawAssignment{
			Giver:    p.ID,
			Receiver: shuffled[(i+1)%n].ID,
			Plan:     plan,
		}
	}

	return assignments, nil
}

// newRNG returns a fresh PCG source seeded from the auto-seeded global
// generator. Each draw is independently randomized; no seed is exposed
// outside tests.
func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
