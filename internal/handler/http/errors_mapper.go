// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrNoCallerInContext:               http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrInvalidJSON:    http.StatusBadRequest,
	ErrMissingMovieID: http.StatusBadRequest,
	ErrRouteNotFound:  http.StatusNotFound,

	validators.ErrEmptyFirstName:   http.StatusBadRequest,
	validators.ErrEmptyLastName:    http.StatusBadRequest,
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	validators.ErrEmptyPassword:    http.StatusBadRequest,
	validators.ErrPasswordTooLong:  http.StatusBadRequest,
	validators.ErrEmptyRole:        http.StatusBadRequest,
	validators.ErrEmptyTitle:       http.StatusBadRequest,
	validators.ErrInvalidEpisodeID: http.StatusBadRequest,
	validators.ErrEmptyCrawl:       http.StatusBadRequest,
	validators.ErrEmptyDirector:    http.StatusBadRequest,
	validators.ErrEmptyProducer:    http.StatusBadRequest,
	validators.ErrEmptyReleaseDate: http.StatusBadRequest,
	validators.ErrEmptyURL:         http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
