// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/models"
)

func success[T any](data T, message string) models.Response[T] {
	return models.Response[T]{
		Data:       &data,
		Message:    message,
		IsSuccess:  true,
		StatusCode: http.StatusOK,
	}
}

// failure converts err into an envelope. A [ControlledError] keeps its
// message and status; anything else becomes 500.
func failure[T any](err error) models.Response[T] {
	var controlled *ControlledError
	if errors.As(err, &controlled) {
		return models.Response[T]{
			Message:    controlled.Message,
			StatusCode: controlled.StatusCode,
		}
	}

	message := MsgSomethingWentWrong
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	return models.Response[T]{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// logFailure records err under fn. Controlled failures are expected and go to
// the warn level.
func logFailure(ctx context.Context, fn string, err error) {
	log := logger.FromContext(ctx)

	var controlled *ControlledError
	if errors.As(err, &controlled) {
		log.Warn().
			Str("func", fn).
			Int("status", controlled.StatusCode).
			Msg(controlled.Message)
		return
	}

	log.Err(err).Str("func", fn).Msg("operation failed unexpectedly")
}
