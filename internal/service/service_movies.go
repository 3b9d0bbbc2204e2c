// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/adapter"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

type movieService struct {
	transactor      store.Transactor
	userRepository  store.UserRepository
	movieRepository store.MovieRepository
	cache           store.MovieCache
	catalog         adapter.CatalogAdapter

	logger *logger.Logger
}

func NewMovieService(storages *store.Storages, catalog adapter.CatalogAdapter, logger *logger.Logger) MovieService {
	cache := storages.MovieCache
	if cache == nil {
		cache = store.NewNopMovieCache()
	}

	return &movieService{
		transactor:      storages.Transactor,
		userRepository:  storages.UserRepository,
		movieRepository: storages.MovieRepository,
		cache:           cache,
		catalog:         catalog,
		logger:          logger,
	}
}

func (m *movieService) GetMovies(ctx context.Context, callerID, movieID string) models.Response[[]models.Movie] {
	var (
		movies []models.Movie
		err    error
	)

	if movieID == "" {
		movies, err = m.listMovies(ctx)
	} else {
		movies, err = m.getMovie(ctx, callerID, movieID)
	}
	if err != nil {
		logFailure(ctx, "movieService.GetMovies", err)
		return failure[[]models.Movie](err)
	}

	return success(movies, MsgMoviesFetched)
}

// listMovies serves the whole catalog, from the cache when it holds a copy.
// Cache faults are logged and bypassed. The fill is tied to the generation
// seen before the repository read, so a write committed in between wins.
func (m *movieService) listMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	snapshot, err := m.cache.GetMovies(ctx)
	cacheReachable := err == nil
	if err != nil {
		log.Warn().Err(err).Str("func", "movieService.listMovies").Msg("movie cache lookup failed")
	}
	if snapshot.Hit {
		return snapshot.Movies, nil
	}

	movies, err := m.movieRepository.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing movies: %w", err)
	}

	if !cacheReachable {
		return movies, nil
	}
	if err = m.cache.SetMovies(ctx, snapshot.Generation, movies); err != nil {
		log.Warn().Err(err).Str("func", "movieService.listMovies").Msg("movie cache fill failed")
	}

	return movies, nil
}

// getMovie returns a one-element list, or an empty list when movieID does
// not resolve.
func (m *movieService) getMovie(ctx context.Context, callerID, movieID string) ([]models.Movie, error) {
	if _, err := authorizeCaller(ctx, m.userRepository, callerID, OperationGetMovie, MsgNotAllowedGetMovie); err != nil {
		return nil, err
	}

	movie, err := m.movieRepository.FindMovieByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return []models.Movie{}, nil
		}
		return nil, fmt.Errorf("error finding movie: %w", err)
	}

	return []models.Movie{movie}, nil
}

func (m *movieService) CreateMovie(ctx context.Context, callerID string, fields models.MovieFields) models.Response[models.Movie] {
	var created models.Movie

	err := m.mutate(ctx, callerID, OperationCreateMovie, MsgNotAllowedCreateMovie, func(ctx context.Context) error {
		movie, err := m.movieRepository.CreateMovie(ctx, fields)
		if err != nil {
			if errors.Is(err, store.ErrMovieNotSaved) {
				return internalFailure(MsgErrorCreatingMovie)
			}
			if errors.Is(err, store.ErrValueTooLong) {
				return badRequest(MsgValueTooLong)
			}
			return fmt.Errorf("error creating movie: %w", err)
		}
		created = movie
		return nil
	})
	if err != nil {
		logFailure(ctx, "movieService.CreateMovie", err)
		return failure[models.Movie](err)
	}

	return success(created, MsgMovieCreated)
}

func (m *movieService) UpdateMovie(ctx context.Context, callerID string, fields models.MovieFields, movieID string) models.Response[models.Movie] {
	var updated models.Movie

	err := m.mutate(ctx, callerID, OperationUpdateMovie, MsgNotAllowedUpdateMovie, func(ctx context.Context) error {
		if err := m.ensureMovieExists(ctx, movieID); err != nil {
			return err
		}

		movie, err := m.movieRepository.UpdateMovie(ctx, movieID, fields)
		if err != nil {
			if errors.Is(err, store.ErrMovieNotFound) {
				return internalFailure(MsgErrorUpdatingMovie)
			}
			if errors.Is(err, store.ErrValueTooLong) {
				return badRequest(MsgValueTooLong)
			}
			return fmt.Errorf("error updating movie: %w", err)
		}
		updated = movie
		return nil
	})
	if err != nil {
		logFailure(ctx, "movieService.UpdateMovie", err)
		return failure[models.Movie](err)
	}

	return success(updated, MsgMovieUpdated)
}

func (m *movieService) DeleteMovie(ctx context.Context, callerID, movieID string) models.Response[models.Movie] {
	var deleted models.Movie

	err := m.mutate(ctx, callerID, OperationDeleteMovie, MsgNotAllowedDeleteMovie, func(ctx context.Context) error {
		if err := m.ensureMovieExists(ctx, movieID); err != nil {
			return err
		}

		movie, err := m.movieRepository.DeleteMovie(ctx, movieID)
		if err != nil {
			if errors.Is(err, store.ErrMovieNotFound) {
				return internalFailure(MsgErrorDeletingMovie)
			}
			return fmt.Errorf("error deleting movie: %w", err)
		}
		deleted = movie
		return nil
	})
	if err != nil {
		logFailure(ctx, "movieService.DeleteMovie", err)
		return failure[models.Movie](err)
	}

	return success(deleted, MsgMovieDeleted)
}

// SeedCatalog fetches the external catalog and inserts every film in the
// same transaction that verified the catalog was empty. A failed insert
// leaves the catalog untouched.
func (m *movieService) SeedCatalog(ctx context.Context, callerID string) models.Response[models.SeedPayload] {
	inserted := 0

	err := m.mutate(ctx, callerID, OperationSeedCatalog, MsgNotAllowedSeed, func(ctx context.Context) error {
		count, err := m.movieRepository.CountMovies(ctx)
		if err != nil {
			return fmt.Errorf("error counting movies: %w", err)
		}
		if count > 0 {
			return badRequest(MsgAlreadySeeded)
		}

		films, err := m.catalog.FetchCatalog(ctx)
		if err != nil {
			if errors.Is(err, adapter.ErrUpstreamStatus) {
				return badRequest(MsgUpstreamFailed)
			}
			return fmt.Errorf("error fetching catalog: %w", err)
		}
		if len(films) == 0 {
			return badRequest(MsgUpstreamEmpty)
		}

		fields := make([]models.MovieFields, 0, len(films))
		for _, film := range films {
			fields = append(fields, film.ToMovieFields())
		}

		inserted, err = m.movieRepository.CreateMovies(ctx, fields)
		if err != nil {
			return fmt.Errorf("error inserting catalog: %w", err)
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "movieService.SeedCatalog", err)
		return failure[models.SeedPayload](err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "movieService.SeedCatalog").
		Int("inserted", inserted).
		Msg("catalog seeded")

	return success(models.SeedPayload{}, MsgCatalogSeeded)
}

// mutate runs fn in one transaction after the caller passed the policy for
// op. The cached movie list is dropped once the transaction has committed.
func (m *movieService) mutate(ctx context.Context, callerID string, op Operation, deniedMessage string, fn func(ctx context.Context) error) error {
	err := m.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := authorizeCaller(ctx, m.userRepository, callerID, op, deniedMessage); err != nil {
			return err
		}
		return fn(ctx)
	})
	if err != nil {
		return err
	}

	if err = m.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "movieService.mutate").
			Str("operation", op.String()).
			Msg("movie cache invalidation failed")
	}

	return nil
}

func (m *movieService) ensureMovieExists(ctx context.Context, movieID string) error {
	if _, err := m.movieRepository.FindMovieByID(ctx, movieID); err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return badRequest(MsgMovieDoesNotExist)
		}
		return fmt.Errorf("error finding movie: %w", err)
	}
	return nil
}
