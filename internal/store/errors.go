// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT into users violates
	// the unique index on email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a user lookup (by id or email)
	// matches no row. A malformed id is reported the same way.
	ErrUserNotFound = errors.New("user was not found")

	// ErrMovieNotFound is returned when a movie lookup, update or delete
	// targets an id that does not exist.
	ErrMovieNotFound = errors.New("movie was not found")

	// ErrMovieNotSaved is returned when an INSERT of a movie completes
	// without returning or affecting any row.
	ErrMovieNotSaved = errors.New("movie was not saved")

	// ErrValueTooLong is returned when PostgreSQL rejects a value that
	// exceeds its column width (string_data_right_truncation, 22001).
	ErrValueTooLong = errors.New("value too long for column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCacheUnavailable wraps failures of the movie list cache backend.
	ErrCacheUnavailable = errors.New("movie cache is unavailable")
)
