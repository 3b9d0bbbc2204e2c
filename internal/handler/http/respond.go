// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

// writeEnvelope sends resp with its own status code.
func writeEnvelope[T any](w http.ResponseWriter, r *http.Request, resp models.Response[T]) {
	if _, err := utils.WriteJSON(w, resp, resp.StatusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeEnvelope").Msg("failed to write response")
	}
}

// writeError answers a transport-level failure with an envelope whose data
// is null. The status is derived from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Warn().
		Err(err).
		Str("func", "writeError").
		Int("status", status).
		Msg("request rejected")

	writeEnvelope(w, r, models.Response[any]{
		Message:    err.Error(),
		StatusCode: status,
	})
}

// decodeJSON reads the request body into dst. Unknown fields are tolerated.
// The decoder error is logged; callers only see [ErrInvalidJSON].
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrInvalidJSON
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "decodeJSON").Msg("malformed request body")
		return ErrInvalidJSON
	}
	return nil
}

// callerID returns the user id stored by the auth middleware.
func callerID(r *http.Request) (string, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoCallerInContext
	}
	return id, nil
}
