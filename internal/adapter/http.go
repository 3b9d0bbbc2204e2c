// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

const filmsPath = "/films"

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP/REST implementation of
// [CatalogAdapter]. It normalises and validates cfg.CatalogURL and bounds
// every request by cfg.RequestTimeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the URL is empty or cannot
// be parsed.
func NewHTTPCatalogAdapter(cfg config.Adapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.CatalogURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating catalog adapter")

	return &httpCatalogAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchCatalog implements [CatalogAdapter]. It GETs {base}/films and returns
// the decoded results list.
func (h *httpCatalogAdapter) FetchCatalog(ctx context.Context) ([]models.CatalogFilm, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		Get(filmsPath)
	if err != nil {
		log.Err(err).Str("func", "httpCatalogAdapter.FetchCatalog").Msg("catalog request failed")
		return nil, fmt.Errorf("fetch catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Err(err).
			Str("func", "httpCatalogAdapter.FetchCatalog").
			Int("status", resp.StatusCode()).
			Msg("catalog answered with error status")
		return nil, err
	}

	var page models.CatalogPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		log.Err(err).Str("func", "httpCatalogAdapter.FetchCatalog").Msg("failed to decode catalog page")
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	log.Debug().
		Str("func", "httpCatalogAdapter.FetchCatalog").
		Int("count", len(page.Results)).
		Msg("catalog fetched")

	return page.Results, nil
}
