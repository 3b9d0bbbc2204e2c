// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations of the movie catalog.
//
// Every public operation returns a [models.Response] envelope rather than an
// error: controlled failures carry their own message and a 400 (or 500)
// status, everything else becomes 500. Multi-step writes run inside a
// [store.Transactor] unit of work and consult the role policy ([Permits])
// before mutating anything.
package service

import (
	"context"

	"github.com/MKhiriev/movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) models.Response[models.AuthPayload]
	SignIn(ctx context.Context, req models.SignInRequest) models.Response[models.AuthPayload]
	ChangeUserRole(ctx context.Context, callerID string, req models.ChangeUserRoleRequest) models.Response[models.ChangeUserRolePayload]

	// ParseAccessToken validates an access token and returns its claims.
	// Refresh tokens are rejected.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

type MovieService interface {
	// GetMovies lists the whole catalog when movieID is empty. Otherwise it
	// returns a list with the single matching movie, or an empty list.
	GetMovies(ctx context.Context, callerID, movieID string) models.Response[[]models.Movie]

	CreateMovie(ctx context.Context, callerID string, fields models.MovieFields) models.Response[models.Movie]
	UpdateMovie(ctx context.Context, callerID string, fields models.MovieFields, movieID string) models.Response[models.Movie]
	DeleteMovie(ctx context.Context, callerID, movieID string) models.Response[models.Movie]

	// SeedCatalog imports the external films catalog into an empty catalog.
	SeedCatalog(ctx context.Context, callerID string) models.Response[models.SeedPayload]
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionPayload
}
