// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMovieRepo(t *testing.T) (*movieRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	repo := &movieRepository{
		db:         db,
		transactor: NewTransactor(db),
		ids:        fixedIDs(testMovieID),
		logger:     logger.Nop(),
	}
	return repo, mock
}

func newHopeFields() models.MovieFields {
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

func movieRows(ids ...string) *sqlmock.Rows {
	f := newHopeFields()
	now := time.Now()
	rows := sqlmock.NewRows(movieColumns)
	for _, id := range ids {
		rows.AddRow(id, f.Title, f.EpisodeID, f.OpeningCrawl, f.Director, f.Producer, f.ReleaseDate, f.URL, now, now)
	}
	return rows
}

func TestListMovies_Success(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM movies ORDER BY created_at ASC, id ASC`).
		WillReturnRows(movieRows(testMovieID, testUserID))

	movies, err := repo.ListMovies(context.Background())

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, testMovieID, movies[0].ID)
	assert.Equal(t, "A New Hope", movies[0].Title)
	assert.Equal(t, 4, movies[0].EpisodeID)
	expectationsMet(t, mock)
}

func TestListMovies_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM movies").WillReturnRows(movieRows())

	movies, err := repo.ListMovies(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestListMovies_QueryError(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM movies").WillReturnError(errors.New("boom"))

	_, err := repo.ListMovies(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListMovies_RowError(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	rows := movieRows(testMovieID, testUserID).RowError(1, errors.New("connection lost"))
	mock.ExpectQuery("SELECT (.+) FROM movies").WillReturnRows(rows)

	_, err := repo.ListMovies(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindMovieByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM movies WHERE id = \$1`).
			WithArgs(testMovieID).
			WillReturnRows(movieRows(testMovieID))

		movie, err := repo.FindMovieByID(context.Background(), testMovieID)

		require.NoError(t, err)
		assert.Equal(t, testMovieID, movie.ID)
		expectationsMet(t, mock)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM movies WHERE id = \$1`).
			WithArgs(testMovieID).
			WillReturnRows(movieRows())

		_, err := repo.FindMovieByID(context.Background(), testMovieID)

		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		_, err := repo.FindMovieByID(context.Background(), "42")

		assert.ErrorIs(t, err, ErrMovieNotFound)
		expectationsMet(t, mock)
	})
}

func TestCountMovies(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountMovies(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestCreateMovie_Success(t *testing.T) {
	repo, mock := newTestMovieRepo(t)
	f := newHopeFields()

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs(testMovieID, f.Title, f.EpisodeID, f.OpeningCrawl, f.Director, f.Producer, f.ReleaseDate, f.URL).
		WillReturnRows(movieRows(testMovieID))

	movie, err := repo.CreateMovie(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, testMovieID, movie.ID)
	assert.Equal(t, f, movie.MovieFields)
	assert.False(t, movie.CreatedAt.IsZero())
	expectationsMet(t, mock)
}

func TestCreateMovie_NoRowReturned(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery("INSERT INTO movies").WillReturnRows(movieRows())

	_, err := repo.CreateMovie(context.Background(), newHopeFields())

	assert.ErrorIs(t, err, ErrMovieNotSaved)
}

func TestCreateMovie_ValueTooLong(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery("INSERT INTO movies").
		WillReturnError(pgError(pgerrcode.StringDataRightTruncationDataException))

	_, err := repo.CreateMovie(context.Background(), newHopeFields())

	assert.ErrorIs(t, err, ErrValueTooLong)
	assert.NotErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateMovies_AllInOneTransaction(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO movies")
	for range 3 {
		prep.ExpectExec().
			WithArgs(testMovieID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	fields := []models.MovieFields{newHopeFields(), newHopeFields(), newHopeFields()}
	inserted, err := repo.CreateMovies(context.Background(), fields)

	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	expectationsMet(t, mock)
}

func TestCreateMovies_FailureRollsBackEverything(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO movies")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	fields := []models.MovieFields{newHopeFields(), newHopeFields(), newHopeFields()}
	inserted, err := repo.CreateMovies(context.Background(), fields)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Zero(t, inserted)
	expectationsMet(t, mock)
}

func TestCreateMovies_ZeroRowsAffected(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO movies").
		ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateMovies(context.Background(), []models.MovieFields{newHopeFields()})

	assert.ErrorIs(t, err, ErrMovieNotSaved)
	expectationsMet(t, mock)
}

func TestCreateMovies_PrepareError(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO movies").WillReturnError(errors.New("syntax"))
	mock.ExpectRollback()

	_, err := repo.CreateMovies(context.Background(), []models.MovieFields{newHopeFields()})

	assert.ErrorIs(t, err, ErrPreparingStatement)
	expectationsMet(t, mock)
}

func TestCreateMovies_Empty(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	inserted, err := repo.CreateMovies(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, inserted)
	expectationsMet(t, mock)
}

func TestCreateMovies_JoinsOuterTransaction(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectPrepare("INSERT INTO movies").
		ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := repo.CountMovies(ctx); err != nil {
			return err
		}
		_, err := repo.CreateMovies(ctx, []models.MovieFields{newHopeFields()})
		return err
	})

	require.NoError(t, err)
	expectationsMet(t, mock)
}

func TestUpdateMovie(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery(`UPDATE movies SET (.+) WHERE id = \$8`).
			WillReturnRows(movieRows(testMovieID))

		movie, err := repo.UpdateMovie(context.Background(), testMovieID, newHopeFields())

		require.NoError(t, err)
		assert.Equal(t, testMovieID, movie.ID)
		expectationsMet(t, mock)
	})

	t.Run("vanished", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery("UPDATE movies").WillReturnRows(movieRows())

		_, err := repo.UpdateMovie(context.Background(), testMovieID, newHopeFields())

		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("value too long", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery("UPDATE movies").
			WillReturnError(pgError(pgerrcode.StringDataRightTruncationDataException))

		_, err := repo.UpdateMovie(context.Background(), testMovieID, newHopeFields())

		assert.ErrorIs(t, err, ErrValueTooLong)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery("UPDATE movies").WillReturnError(errors.New("boom"))

		_, err := repo.UpdateMovie(context.Background(), testMovieID, newHopeFields())

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery(`DELETE FROM movies WHERE id = \$1 RETURNING`).
			WithArgs(testMovieID).
			WillReturnRows(movieRows(testMovieID))

		movie, err := repo.DeleteMovie(context.Background(), testMovieID)

		require.NoError(t, err)
		assert.Equal(t, "A New Hope", movie.Title)
		expectationsMet(t, mock)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		mock.ExpectQuery("DELETE FROM movies").WillReturnRows(movieRows())

		_, err := repo.DeleteMovie(context.Background(), testMovieID)

		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		_, err := repo.DeleteMovie(context.Background(), "movie-1")

		assert.ErrorIs(t, err, ErrMovieNotFound)
		expectationsMet(t, mock)
	})
}
