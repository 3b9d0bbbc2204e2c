// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/movie-catalog/models"
)

const movieIDParam = "id"

// getMovies lists the catalog, or looks up a single movie when the id query
// parameter is present.
func (h *Handler) getMovies(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movieID := strings.TrimSpace(r.URL.Query().Get(movieIDParam))
	writeEnvelope(w, r, h.services.MovieService.GetMovies(r.Context(), caller, movieID))
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fields, err := h.movieFields(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.MovieService.CreateMovie(r.Context(), caller, fields))
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movieID, err := requiredMovieID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fields, err := h.movieFields(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.MovieService.UpdateMovie(r.Context(), caller, fields, movieID))
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movieID, err := requiredMovieID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.MovieService.DeleteMovie(r.Context(), caller, movieID))
}

func (h *Handler) seedCatalog(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.MovieService.SeedCatalog(r.Context(), caller))
}

func (h *Handler) movieFields(r *http.Request) (models.MovieFields, error) {
	var fields models.MovieFields
	if err := decodeJSON(r, &fields); err != nil {
		return models.MovieFields{}, err
	}
	if err := h.validator.Validate(r.Context(), fields); err != nil {
		return models.MovieFields{}, err
	}
	return fields, nil
}

func requiredMovieID(r *http.Request) (string, error) {
	movieID := strings.TrimSpace(r.URL.Query().Get(movieIDParam))
	if movieID == "" {
		return "", ErrMissingMovieID
	}
	return movieID, nil
}
