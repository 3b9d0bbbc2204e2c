// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/mock"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryMovies is a stateful MovieRepository. afterListSnapshot, when set,
// runs once ListMovies has copied the rows and before it returns them.
type memoryMovies struct {
	mu     sync.Mutex
	rows   []models.Movie
	nextID int
	now    time.Time

	listCalls         int
	afterListSnapshot func()
}

func newMemoryMovies(rows ...models.Movie) *memoryMovies {
	return &memoryMovies{
		rows: rows,
		now:  time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *memoryMovies) ListMovies(context.Context) ([]models.Movie, error) {
	r.mu.Lock()
	r.listCalls++
	snapshot := slices.Clone(r.rows)
	hook := r.afterListSnapshot
	r.afterListSnapshot = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return snapshot, nil
}

func (r *memoryMovies) FindMovieByID(_ context.Context, id string) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return models.Movie{}, store.ErrMovieNotFound
}

func (r *memoryMovies) CountMovies(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memoryMovies) CreateMovie(_ context.Context, fields models.MovieFields) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.now = r.now.Add(time.Second)
	movie := models.Movie{
		ID:          fmt.Sprintf("0190b0a4-0000-7000-8000-%012d", r.nextID),
		MovieFields: fields,
		CreatedAt:   r.now,
		UpdatedAt:   r.now,
	}
	r.rows = append(r.rows, movie)
	return movie, nil
}

func (r *memoryMovies) CreateMovies(ctx context.Context, fields []models.MovieFields) (int, error) {
	for _, f := range fields {
		if _, err := r.CreateMovie(ctx, f); err != nil {
			return 0, err
		}
	}
	return len(fields), nil
}

func (r *memoryMovies) UpdateMovie(_ context.Context, id string, fields models.MovieFields) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.now = r.now.Add(time.Second)
			r.rows[i].MovieFields = fields
			r.rows[i].UpdatedAt = r.now
			return r.rows[i], nil
		}
	}
	return models.Movie{}, store.ErrMovieNotFound
}

func (r *memoryMovies) DeleteMovie(_ context.Context, id string) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = slices.Delete(r.rows, i, i+1)
			return row, nil
		}
	}
	return models.Movie{}, store.ErrMovieNotFound
}

// memoryCache follows the generation contract of the redis cache.
type memoryCache struct {
	mu         sync.Mutex
	generation int64
	movies     []models.Movie
	stored     bool
}

func (c *memoryCache) GetMovies(context.Context) (store.MovieSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return store.MovieSnapshot{Movies: slices.Clone(c.movies), Generation: c.generation, Hit: c.stored}, nil
}

func (c *memoryCache) SetMovies(_ context.Context, generation int64, movies []models.Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return nil
	}
	c.movies = slices.Clone(movies)
	c.stored = true
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.movies = nil
	c.stored = false
	return nil
}

func newStatefulMovieSvc(t *testing.T, movies *memoryMovies, cache store.MovieCache) MovieService {
	t.Helper()
	ctrl := gomock.NewController(t)

	tx := mock.NewMockTransactor(ctrl)
	passThrough(tx)

	users := mock.NewMockUserRepository(ctrl)
	users.EXPECT().FindUserByID(gomock.Any(), adminID).Return(adminUser(), nil).AnyTimes()
	users.EXPECT().FindUserByID(gomock.Any(), regularID).Return(regularUser(), nil).AnyTimes()

	storages := &store.Storages{
		Transactor:      tx,
		UserRepository:  users,
		MovieRepository: movies,
		MovieCache:      cache,
	}

	return NewMovieService(storages, mock.NewMockCatalogAdapter(ctrl), logger.Nop())
}

func TestGetMovies_WriteDuringListIsNotMaskedByCache(t *testing.T) {
	movies := newMemoryMovies(hopeMovie())
	cache := &memoryCache{}
	svc := newStatefulMovieSvc(t, movies, cache)
	ctx := context.Background()

	empire := hopeFields()
	empire.Title = "The Empire Strikes Back"
	empire.EpisodeID = 5

	// The list read has taken its snapshot when the create commits.
	movies.afterListSnapshot = func() {
		created := svc.CreateMovie(ctx, adminID, empire)
		require.True(t, created.IsSuccess)
	}

	first := svc.GetMovies(ctx, regularID, "")
	require.True(t, first.IsSuccess)
	assert.Len(t, *first.Data, 1)

	second := svc.GetMovies(ctx, regularID, "")
	require.True(t, second.IsSuccess)
	require.Len(t, *second.Data, 2)
	assert.Equal(t, empire, (*second.Data)[1].MovieFields)
	assert.Equal(t, 2, movies.listCalls)
}

func TestGetMovies_ListIsCachedUntilWrite(t *testing.T) {
	movies := newMemoryMovies(hopeMovie())
	svc := newStatefulMovieSvc(t, movies, &memoryCache{})
	ctx := context.Background()

	first := svc.GetMovies(ctx, regularID, "")
	second := svc.GetMovies(ctx, regularID, "")
	require.True(t, second.IsSuccess)
	assert.Equal(t, *first.Data, *second.Data)
	assert.Equal(t, 1, movies.listCalls)

	require.True(t, svc.DeleteMovie(ctx, adminID, movieID).IsSuccess)

	third := svc.GetMovies(ctx, regularID, "")
	require.True(t, third.IsSuccess)
	assert.Empty(t, *third.Data)
	assert.Equal(t, 2, movies.listCalls)
}

func TestCreateMovie_ReadBackByID(t *testing.T) {
	svc := newStatefulMovieSvc(t, newMemoryMovies(), store.NewNopMovieCache())
	ctx := context.Background()

	created := svc.CreateMovie(ctx, adminID, hopeFields())
	require.True(t, created.IsSuccess)
	movie := *created.Data
	require.NotEmpty(t, movie.ID)
	assert.Equal(t, hopeFields(), movie.MovieFields)
	assert.False(t, movie.CreatedAt.IsZero())
	assert.False(t, movie.UpdatedAt.IsZero())

	got := svc.GetMovies(ctx, regularID, movie.ID)

	require.True(t, got.IsSuccess)
	assert.Equal(t, []models.Movie{movie}, *got.Data)
}

func TestGetMovies_RepeatedReadsWithoutWritesAgree(t *testing.T) {
	svc := newStatefulMovieSvc(t, newMemoryMovies(hopeMovie()), &memoryCache{})
	ctx := context.Background()

	byIDFirst := svc.GetMovies(ctx, regularID, movieID)
	byIDSecond := svc.GetMovies(ctx, regularID, movieID)
	require.True(t, byIDFirst.IsSuccess)
	require.True(t, byIDSecond.IsSuccess)
	assert.Equal(t, byIDFirst, byIDSecond)

	listFirst := svc.GetMovies(ctx, adminID, "")
	listSecond := svc.GetMovies(ctx, adminID, "")
	assert.Equal(t, listFirst, listSecond)
}
