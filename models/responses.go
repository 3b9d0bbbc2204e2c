// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the uniform envelope returned by every catalog operation.
//
// Data is nil on every failure. StatusCode is copied verbatim onto the HTTP
// response by the transport layer.
type Response[T any] struct {
	Data       *T     `json:"data"`
	Message    string `json:"message"`
	IsSuccess  bool   `json:"isSuccess"`
	StatusCode int    `json:"statusCode"`
}

// AuthPayload is returned by sign-up and sign-in. The password digest is
// never part of it.
type AuthPayload struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Tokens    TokenPair `json:"tokens"`
}

// ChangeUserRolePayload is returned by a successful role change.
type ChangeUserRolePayload struct {
	Email   string `json:"email"`
	NewRole Role   `json:"newRole"`
}

// SeedPayload is the empty object returned by a successful seed.
type SeedPayload struct{}

// VersionPayload is returned by GET /version.
type VersionPayload struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
