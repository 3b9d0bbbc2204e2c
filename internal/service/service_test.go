// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/mock"
	"github.com/MKhiriev/movie-catalog/models"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminID   = "0190b0a4-0000-7000-8000-00000000a001"
	regularID = "0190b0a4-0000-7000-8000-00000000b002"
	movieID   = "0190b0a4-0000-7000-8000-00000000c003"
)

func testAppConfig() config.App {
	return config.App{
		AccessTokenSecret:    "access-secret",
		RefreshTokenSecret:   "refresh-secret",
		TokenIssuer:          "movie-catalog",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 2 * time.Hour,
		PasswordHashCost:     bcrypt.MinCost,
	}
}

// passThrough makes the transactor run fn directly, as a committed
// transaction would.
func passThrough(tx *mock.MockTransactor) {
	tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func adminUser() models.User {
	return models.User{ID: adminID, FirstName: "Leia", LastName: "Organa", Email: "leia@rebels.org", Role: models.Admin}
}

func regularUser() models.User {
	return models.User{ID: regularID, FirstName: "Luke", LastName: "Skywalker", Email: "luke@rebels.org", Role: models.RegularUser}
}

func hopeFields() models.MovieFields {
	return models.MovieFields{
		Title:        "A New Hope",
		EpisodeID:    4,
		OpeningCrawl: "It is a period of civil war.",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1977-05-25",
		URL:          "https://swapi.dev/api/films/1/",
	}
}

func hopeMovie() models.Movie {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Movie{ID: movieID, MovieFields: hopeFields(), CreatedAt: now, UpdatedAt: now}
}
