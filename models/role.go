// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of account roles known to the catalog.
type Role string

const (
	// Admin may manage the movie catalog and change other users' roles.
	Admin Role = "ADMIN"

	// RegularUser is the default role assigned at sign-up.
	RegularUser Role = "REGULAR_USER"
)

// ErrUnknownRole is returned by ParseRole for values outside the closed set.
var ErrUnknownRole = errors.New("unknown user role")

// ParseRole converts raw into a Role, rejecting anything but ADMIN and
// REGULAR_USER.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case Admin, RegularUser:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == Admin || r == RegularUser
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
