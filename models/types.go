// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Plan label constants
const (
	PlanA = "A"
	PlanB = "B"
)

// Price band for a gift plan, inclusive on both ends
const (
	MinPrice = 250
	MaxPrice = 350
)

// Role constants
const (
	RoleAdministrator = "administrator"
	RoleParticipant   = "participant"
)

// Request types

type SubmitPlanRequest struct {
	ID        string    `json:"id"`
	PlanA     *Plan     `json:"planA"`
	PlanB     *Plan     `json:"planB"`
	Timestamp time.Time `json:"timestamp"`
}

// Response types

type SubmitPlanResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type IdentityResponse struct {
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Domain types

// Plan is one of the two gift alternatives a participant offers:
// a pair of game titles plus a total price inside the price band.
type Plan struct {
	Games []string `json:"games"`
	Price Price    `json:"price"`
}

// ParticipantRecord is one participant's submission, keyed by nickname.
// JSON field names match the flat-file layout written by earlier versions
// of the service, so existing users.json data stays readable.
type ParticipantRecord struct {
	ID        string    `json:"id"`
	PlanA     Plan      `json:"planA"`
	PlanB     Plan      `json:"planB"`
	Timestamp time.Time `json:"timestamp"`
}

// DrawAssignment pairs one giver with one receiver and the plan
// (A or B) the gift should come from.
type DrawAssignment struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
	Plan     string `json:"plan"`
}

// DrawRecord is one completed draw over the full participant set.
type DrawRecord struct {
	ID          string           `json:"id"`
	PerformedAt time.Time        `json:"performed_at"`
	Assignments []DrawAssignment `json:"assignments"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
