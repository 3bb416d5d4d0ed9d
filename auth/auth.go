// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"

	"github.com/danielhkuo/gift-draw/models"
)

var ErrInvalidIdentity = errors.New("nickname must not be empty")

// Classify maps a nickname to a role. The nickname is trimmed before any
// comparison; an empty result fails with ErrInvalidIdentity. The match
// against the administrator nickname is case-sensitive.
//
// This is an identity convention among a group of friends, not
// authentication: anyone who knows the administrator nickname can use it.
func Classify(nickname, adminNickname string) (string, error) {
	trimmed := strings.TrimSpace(nickname)
	if trimmed == "" {
		return "", ErrInvalidIdentity
	}

	if trimmed == adminNickname {
		return models.RoleAdministrator, nil
	}
	return models.RoleParticipant, nil
}
