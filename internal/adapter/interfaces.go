// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for services the catalog depends on.
//
// The primary abstraction is [CatalogAdapter], which decouples the movie
// service from the external films catalog. The package ships an HTTP/REST
// implementation ([NewHTTPCatalogAdapter]) built on resty.
//
// Upstream failures are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUpstreamStatus] for
// any non-2xx response).
package adapter

import (
	"context"

	"github.com/MKhiriev/movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter reads the external films catalog.
type CatalogAdapter interface {
	// FetchCatalog returns every film listed by the catalog. A non-2xx
	// response yields an error wrapping [ErrUpstreamStatus].
	FetchCatalog(ctx context.Context) ([]models.CatalogFilm, error)
}
