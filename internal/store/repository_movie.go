// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/jackc/pgerrcode"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. It executes all catalog CRUD operations against the
// "movies" table, on the transaction carried by ctx when there is one.
type movieRepository struct {
	db         *DB
	transactor Transactor
	ids        IDGenerator
	logger     *logger.Logger
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:         db,
		transactor: NewTransactor(db),
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// ListMovies returns every movie ordered by creation time. An empty catalog
// yields an empty, non-nil slice.
func (m *movieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMoviesQuery()
	if err != nil {
		log.Err(err).Str("func", "movieRepository.ListMovies").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.db.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.ListMovies").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0, 16)
	for rows.Next() {
		movie, scanErr := scanMovie(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "movieRepository.ListMovies").Msg("failed to scan movie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		movies = append(movies, movie)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "movieRepository.ListMovies").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return movies, nil
}

// FindMovieByID implements [MovieRepository]. A malformed id matches nothing.
func (m *movieRepository) FindMovieByID(ctx context.Context, id string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Movie{}, ErrMovieNotFound
	}

	query, args, err := buildFindMovieQuery(id)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.FindMovieByID").Msg("failed to build query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movie, err := scanMovie(m.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "movieRepository.FindMovieByID").Str("movie_id", id).Msg("failed to find movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movie, nil
}

// CountMovies implements [MovieRepository].
func (m *movieRepository) CountMovies(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMoviesQuery()
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CountMovies").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = m.db.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "movieRepository.CountMovies").Msg("failed to count movies")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CreateMovie implements [MovieRepository]. An INSERT that returns no row
// yields [ErrMovieNotSaved].
func (m *movieRepository) CreateMovie(ctx context.Context, fields models.MovieFields) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateMovieQuery(m.ids.Generate(), fields)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovie").Msg("failed to build query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movie, err := scanMovie(m.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotSaved
		}
		log.Err(err).Str("func", "movieRepository.CreateMovie").Msg("failed to insert movie")
		if postgresError(err) == pgerrcode.StringDataRightTruncationDataException {
			return models.Movie{}, ErrValueTooLong
		}
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "movieRepository.CreateMovie").
		Str("movie_id", movie.ID).
		Msg("movie created")

	return movie, nil
}

// CreateMovies implements [MovieRepository].
//
// The statement is prepared once and executed per entry. Any failure rolls
// back every insert of the batch. When ctx already carries a transaction the
// batch joins it.
func (m *movieRepository) CreateMovies(ctx context.Context, fields []models.MovieFields) (int, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		log.Warn().
			Str("func", "movieRepository.CreateMovies").
			Msg("no movies provided")
		return 0, nil
	}

	query, err := buildInsertMovieStatement()
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovies").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	inserted := 0
	err = m.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		stmt, prepErr := m.db.executor(ctx).PrepareContext(ctx, query)
		if prepErr != nil {
			log.Err(prepErr).
				Str("func", "movieRepository.CreateMovies").
				Msg("failed to prepare statement")
			return fmt.Errorf("%w: %w", ErrPreparingStatement, prepErr)
		}
		defer stmt.Close()

		for idx, f := range fields {
			result, execErr := stmt.ExecContext(ctx, movieInsertValues(m.ids.Generate(), f)...)
			if execErr != nil {
				log.Err(execErr).
					Str("func", "movieRepository.CreateMovies").
					Int("iteration", idx).
					Str("title", f.Title).
					Msg("failed to insert movie")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}

			affected, rowsErr := result.RowsAffected()
			if rowsErr != nil || affected == 0 {
				log.Error().
					Str("func", "movieRepository.CreateMovies").
					Int("iteration", idx).
					Msg("movie was not inserted")
				return ErrMovieNotSaved
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().
		Str("func", "movieRepository.CreateMovies").
		Int("inserted", inserted).
		Msg("movies inserted")

	return inserted, nil
}

// UpdateMovie implements [MovieRepository]. An id that matches no row yields
// [ErrMovieNotFound].
func (m *movieRepository) UpdateMovie(ctx context.Context, id string, fields models.MovieFields) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Movie{}, ErrMovieNotFound
	}

	query, args, err := buildUpdateMovieQuery(id, fields)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Msg("failed to build query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movie, err := scanMovie(m.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Str("movie_id", id).Msg("failed to update movie")
		if postgresError(err) == pgerrcode.StringDataRightTruncationDataException {
			return models.Movie{}, ErrValueTooLong
		}
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movie, nil
}

// DeleteMovie implements [MovieRepository]. An id that matches no row yields
// [ErrMovieNotFound].
func (m *movieRepository) DeleteMovie(ctx context.Context, id string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Movie{}, ErrMovieNotFound
	}

	query, args, err := buildDeleteMovieQuery(id)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.DeleteMovie").Msg("failed to build query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movie, err := scanMovie(m.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "movieRepository.DeleteMovie").Str("movie_id", id).Msg("failed to delete movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movie, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var movie models.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.EpisodeID,
		&movie.OpeningCrawl,
		&movie.Director,
		&movie.Producer,
		&movie.ReleaseDate,
		&movie.URL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	return movie, err
}
