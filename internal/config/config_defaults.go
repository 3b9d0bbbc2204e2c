// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenIssuer          = "movie-catalog"
	DefaultAccessTokenDuration  = 24 * time.Hour
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultVersion              = "N/A"
	DefaultLogLevel             = "debug"

	DefaultMaxOpenConns = 10
	DefaultMaxIdleConns = 4
	DefaultCacheTTL     = 5 * time.Minute

	DefaultHTTPAddress     = ":3000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultCatalogURL            = "https://swapi.dev/api"
	DefaultCatalogRequestTimeout = 15 * time.Second
)

// applyDefaults fills every field left at its zero value by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.AccessTokenDuration, DefaultAccessTokenDuration)
	setDefault(&cfg.App.RefreshTokenDuration, DefaultRefreshTokenDuration)
	setDefault(&cfg.App.PasswordHashCost, bcrypt.DefaultCost)
	setDefault(&cfg.App.Version, DefaultVersion)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)

	setDefault(&cfg.Storage.DB.MaxOpenConns, DefaultMaxOpenConns)
	setDefault(&cfg.Storage.DB.MaxIdleConns, DefaultMaxIdleConns)
	setDefault(&cfg.Storage.Cache.TTL, DefaultCacheTTL)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Adapter.CatalogURL, DefaultCatalogURL)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultCatalogRequestTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
