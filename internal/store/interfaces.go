// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the movie catalog: PostgreSQL
// repositories for users and movies, the transaction boundary shared by
// multi-step writes, and an optional Redis cache of the movie list.
package store

import (
	"context"

	"github.com/MKhiriev/movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a unit of work atomically.
//
// WithinTransaction begins a transaction, hands fn a context that carries
// it, and commits when fn returns nil. Any error from fn rolls the
// transaction back and is returned unchanged. Repositories called with the
// derived context take part in the transaction. A nested call reuses the
// outer transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository owns the users table. It does not check email uniqueness
// itself beyond the unique index; callers check before they create.
type UserRepository interface {
	// FindUserByEmail returns [ErrUserNotFound] when no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when id does not resolve.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// CreateUser inserts user and returns the stored row. An empty role is
	// stored as REGULAR_USER. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// SetUserRole updates the role of the user with id and returns the
	// updated row.
	SetUserRole(ctx context.Context, id string, role models.Role) (models.User, error)
}

// MovieRepository owns the movies table.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// FindMovieByID returns [ErrMovieNotFound] when id does not resolve.
	FindMovieByID(ctx context.Context, id string) (models.Movie, error)

	CountMovies(ctx context.Context) (int64, error)

	// CreateMovie inserts a single movie and returns the stored row.
	CreateMovie(ctx context.Context, fields models.MovieFields) (models.Movie, error)

	// CreateMovies inserts every entry through one prepared statement inside
	// a single transaction and returns the number of inserted rows.
	CreateMovies(ctx context.Context, fields []models.MovieFields) (int, error)

	// UpdateMovie replaces all editable fields of the movie with id.
	UpdateMovie(ctx context.Context, id string, fields models.MovieFields) (models.Movie, error)

	// DeleteMovie removes the movie with id and returns the deleted row.
	DeleteMovie(ctx context.Context, id string) (models.Movie, error)
}

// MovieSnapshot is the result of a cache lookup. Generation identifies the
// cache state the lookup observed; a later fill passes it back to SetMovies.
type MovieSnapshot struct {
	Movies     []models.Movie
	Generation int64
	Hit        bool
}

// MovieCache keeps the full movie list between writes.
type MovieCache interface {
	// GetMovies reports a miss with Hit == false.
	GetMovies(ctx context.Context) (MovieSnapshot, error)
	// SetMovies stores movies unless the cache was invalidated after the
	// lookup that returned generation.
	SetMovies(ctx context.Context, generation int64, movies []models.Movie) error
	// Invalidate drops the list and rejects fills from earlier lookups.
	Invalidate(ctx context.Context) error
}

// IDGenerator yields identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
