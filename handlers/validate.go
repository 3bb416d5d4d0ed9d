// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/gift-draw/models"
)

var (
	ErrMissingField    = errors.New("every plan needs two game names")
	ErrPriceOutOfRange = fmt.Errorf("price must be between %d and %d", models.MinPrice, models.MaxPrice)
)

// ValidatePlans checks a submitted pair of plans. Pure: no side effects,
// and a failure means nothing about the submission is persisted.
//
// Field presence is checked across both plans before any price, so a
// submission with both kinds of problems reports the missing fields
// first. Both plans must be fully valid; there is no partial acceptance.
func ValidatePlans(planA, planB models.Plan) error {
	for _, plan := range []models.Plan{planA, planB} {
		if len(plan.Games) != 2 {
			return ErrMissingField
		}
		for _, game := range plan.Games {
			if strings.TrimSpace(game) == "" {
				return ErrMissingField
			}
		}
	}

	for _, plan := range []models.Plan{planA, planB} {
		if !plan.Price.IsFinite() || plan.Price < models.MinPrice || plan.Price > models.MaxPrice {
			return ErrPriceOutOfRange
		}
	}

	return nil
}
