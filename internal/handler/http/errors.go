// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport-level failures. They never reach the service layer and are
// answered with an envelope built by the handler.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoCallerInContext means a guarded handler ran without the auth
	// middleware in front of it.
	ErrNoCallerInContext = errors.New("no authenticated user in request context")

	ErrInvalidJSON    = errors.New("Invalid JSON was passed")
	ErrMissingMovieID = errors.New("query parameter `id` is required")
	ErrRouteNotFound  = errors.New("route not found")
)
