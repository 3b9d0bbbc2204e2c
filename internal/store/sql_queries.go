// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/movie-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable  = "users"
	moviesTable = "movies"
)

// psql renders PostgreSQL ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"password_digest",
	"role",
	"created_at",
	"updated_at",
}

var movieColumns = []string{
	"id",
	"title",
	"episode_id",
	"opening_crawl",
	"director",
	"producer",
	"release_date",
	"url",
	"created_at",
	"updated_at",
}

// movieInsertColumns are the columns written on insert, in the order of
// movieInsertValues.
var movieInsertColumns = []string{
	"id",
	"title",
	"episode_id",
	"opening_crawl",
	"director",
	"producer",
	"release_date",
	"url",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func movieInsertValues(id string, f models.MovieFields) []any {
	return []any{id, f.Title, f.EpisodeID, f.OpeningCrawl, f.Director, f.Producer, f.ReleaseDate, f.URL}
}

func buildFindUserQuery(column string, value string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("id", "first_name", "last_name", "email", "password_digest", "role").
		Values(user.ID, user.FirstName, user.LastName, user.Email, user.PasswordDigest, string(user.Role)).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSetUserRoleQuery(id string, role models.Role) (string, []any, error) {
	return psql.
		Update(usersTable).
		Set("role", string(role)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildListMoviesQuery() (string, []any, error) {
	return psql.
		Select(movieColumns...).
		From(moviesTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildFindMovieQuery(id string) (string, []any, error) {
	return psql.
		Select(movieColumns...).
		From(moviesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountMoviesQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(moviesTable).
		ToSql()
}

func buildCreateMovieQuery(id string, fields models.MovieFields) (string, []any, error) {
	return psql.
		Insert(moviesTable).
		Columns(movieInsertColumns...).
		Values(movieInsertValues(id, fields)...).
		Suffix(returning(movieColumns)).
		ToSql()
}

// buildInsertMovieStatement renders the INSERT used as a prepared statement
// for bulk inserts. Only the query text is kept.
func buildInsertMovieStatement() (string, error) {
	query, _, err := psql.
		Insert(moviesTable).
		Columns(movieInsertColumns...).
		Values(make([]any, len(movieInsertColumns))...).
		ToSql()
	return query, err
}

func buildUpdateMovieQuery(id string, f models.MovieFields) (string, []any, error) {
	return psql.
		Update(moviesTable).
		SetMap(map[string]any{
			"title":         f.Title,
			"episode_id":    f.EpisodeID,
			"opening_crawl": f.OpeningCrawl,
			"director":      f.Director,
			"producer":      f.Producer,
			"release_date":  f.ReleaseDate,
			"url":           f.URL,
			"updated_at":    sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning(movieColumns)).
		ToSql()
}

func buildDeleteMovieQuery(id string) (string, []any, error) {
	return psql.
		Delete(moviesTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(movieColumns)).
		ToSql()
}
