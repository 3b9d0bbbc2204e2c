// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/redis/go-redis/v9"
)

const (
	moviesCacheKey      = "movie-catalog:movies:all"
	moviesGenerationKey = "movie-catalog:movies:gen"
)

// setIfGeneration writes the list (KEYS[2]) only when the generation counter
// (KEYS[1]) equals ARGV[1]. ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current then
	current = '0'
end
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// redisMovieCache stores the JSON-encoded movie list under a single key,
// guarded by a generation counter that every write bumps.
type redisMovieCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewConnectRedis opens a Redis client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Str("address", cfg.Address).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisMovieCache constructs a [MovieCache] over client. Entries expire
// after ttl.
func NewRedisMovieCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) MovieCache {
	logger.Debug().Dur("ttl", ttl).Msg("creating redis movie cache")
	return &redisMovieCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetMovies reads the generation counter and the list in one round trip.
// A missing counter counts as generation 0.
func (c *redisMovieCache) GetMovies(ctx context.Context) (MovieSnapshot, error) {
	vals, err := c.client.MGet(ctx, moviesGenerationKey, moviesCacheKey).Result()
	if err != nil {
		return MovieSnapshot{}, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	generation, err := parseGeneration(vals[0])
	if err != nil {
		return MovieSnapshot{}, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	snapshot := MovieSnapshot{Generation: generation}
	raw, ok := vals[1].(string)
	if !ok {
		return snapshot, nil
	}

	var movies []models.Movie
	if err = json.Unmarshal([]byte(raw), &movies); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().
			Err(err).
			Str("func", "redisMovieCache.GetMovies").
			Msg("dropping undecodable cache entry")
		if err = c.client.Del(ctx, moviesCacheKey).Err(); err != nil {
			log.Warn().
				Err(err).
				Str("func", "redisMovieCache.GetMovies").
				Msg("failed to drop undecodable cache entry")
		}
		return snapshot, nil
	}

	snapshot.Movies = movies
	snapshot.Hit = true
	return snapshot, nil
}

// SetMovies stores movies only while the generation counter still equals
// generation. A fill computed before a concurrent Invalidate is discarded.
func (c *redisMovieCache) SetMovies(ctx context.Context, generation int64, movies []models.Movie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("error encoding movies for cache: %w", err)
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{moviesGenerationKey, moviesCacheKey},
		strconv.FormatInt(generation, 10), string(raw), c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	if stored == 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "redisMovieCache.SetMovies").
			Int64("generation", generation).
			Msg("skipping stale cache fill")
	}

	return nil
}

// Invalidate bumps the generation and drops the list atomically.
func (c *redisMovieCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, moviesGenerationKey)
		pipe.Del(ctx, moviesCacheKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func parseGeneration(val any) (int64, error) {
	switch v := val.(type) {
	case nil:
		return 0, nil
	case string:
		generation, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed cache generation %q: %w", v, err)
		}
		return generation, nil
	default:
		return 0, fmt.Errorf("unexpected cache generation type %T", val)
	}
}

// nopMovieCache is used when no cache is configured. Every lookup misses.
type nopMovieCache struct{}

// NewNopMovieCache returns a [MovieCache] that stores nothing.
func NewNopMovieCache() MovieCache {
	return nopMovieCache{}
}

func (nopMovieCache) GetMovies(context.Context) (MovieSnapshot, error) { return MovieSnapshot{}, nil }

func (nopMovieCache) SetMovies(context.Context, int64, []models.Movie) error { return nil }

func (nopMovieCache) Invalidate(context.Context) error { return nil }
