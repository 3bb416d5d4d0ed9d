// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitPlanRequest: id, planA, planB, timestamp

planA and planB are pointers so a missing plan can be told apart from an
empty one and reported as its own client error.

# Response Types

Types for JSON responses:

  - SubmitPlanResponse: success, message
  - IdentityResponse: nickname, role
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Plan: two game titles and a total price
  - ParticipantRecord: one submission per nickname
  - DrawAssignment: giver → receiver plus chosen plan
  - DrawRecord: one completed draw with all assignments

# Wire Compatibility

ParticipantRecord marshals to the exact layout of the original flat-file
store:

	{"id": "...", "planA": {"games": ["...", "..."], "price": 300},
	 "planB": {...}, "timestamp": "2025-12-01T10:00:00Z"}

The Price type accepts both JSON numbers and numeric strings on input,
since older clients sent prices as strings.

# Constants

Plan labels:

	PlanA = "A"
	PlanB = "B"

Price band (inclusive):

	MinPrice = 250
	MaxPrice = 350

Roles:

	RoleAdministrator = "administrator"
	RoleParticipant   = "participant"
*/
package models
