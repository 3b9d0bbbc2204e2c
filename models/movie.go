// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Movie is a single catalog entry. JSON field names follow the external
// films catalog so that seeded and hand-created records look the same.
type Movie struct {
	// ID is the storage-assigned unique identifier of the movie (UUID v7).
	ID string `json:"id"`

	MovieFields

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MovieFields holds the seven user-editable attributes of a movie.
// All of them are required on create and replaced wholesale on update.
type MovieFields struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`
	URL          string `json:"url"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// CatalogFilm is one entry of the external films catalog response.
// Only the fields copied into a Movie are decoded.
type CatalogFilm struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`
	URL          string `json:"url"`
}

// ToMovieFields maps an external film 1:1 onto catalog fields.
func (f CatalogFilm) ToMovieFields() MovieFields {
	return MovieFields{
		Title:        f.Title,
		EpisodeID:    f.EpisodeID,
		OpeningCrawl: f.OpeningCrawl,
		Director:     f.Director,
		Producer:     f.Producer,
		ReleaseDate:  f.ReleaseDate,
		URL:          f.URL,
	}
}

// CatalogPage is the envelope returned by the external catalog's /films
// endpoint.
type CatalogPage struct {
	Count   int           `json:"count"`
	Results []CatalogFilm `json:"results"`
}
