// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the payload of POST /auth/sign-up.
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`

	// IsAdmin asks for the ADMIN role. It is honored only when
	// administrator self-registration is enabled in the configuration.
	IsAdmin bool `json:"isAdmin,omitempty"`
}

// SignInRequest is the payload of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangeUserRoleRequest is the payload of POST /auth/change-user-role.
// Role stays a raw string until the service checks it against the closed set.
type ChangeUserRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
