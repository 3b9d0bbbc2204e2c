// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	Transactor      Transactor
	UserRepository  UserRepository
	MovieRepository MovieRepository
	MovieCache      MovieCache

	db    *DB
	redis *redis.Client
}

// NewStorages connects PostgreSQL, applies migrations and builds the
// repositories. The Redis movie cache is connected only when
// cfg.Cache.Address is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	storages := &Storages{
		Transactor:      NewTransactor(db),
		UserRepository:  NewUserRepository(db, log),
		MovieRepository: NewMovieRepository(db, log),
		MovieCache:      NewNopMovieCache(),
		db:              db,
	}

	if cfg.Cache.Address != "" {
		client, cacheErr := NewConnectRedis(ctx, cfg.Cache, log)
		if cacheErr != nil {
			db.Close()
			return nil, cacheErr
		}
		storages.redis = client
		storages.MovieCache = NewRedisMovieCache(client, cfg.Cache.TTL, log)
	}

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing database: %w", err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
