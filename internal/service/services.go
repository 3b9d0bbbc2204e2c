// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/movie-catalog/internal/adapter"
	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

type Services struct {
	AuthService    AuthService
	MovieService   MovieService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, catalog adapter.CatalogAdapter, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Transactor, storages.UserRepository, cfg.App, logger),
		MovieService:   NewMovieService(storages, catalog, logger),
		AppInfoService: NewAppInfoService(buildInfo, cfg.App, logger),
	}
}
