// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the catalog so
// that orchestrators can check readiness without going through HTTP.
package grpc

import (
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CatalogServiceName is the health service name reported next to the
// overall ("") status.
const CatalogServiceName = "moviecatalog.Catalog"

// Handler is the root gRPC transport handler. It owns the health server
// whose status follows the process lifecycle.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose services report NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing flips every service to NOT_SERVING. Health watchers are
// notified before the server stops accepting calls.
func (h *Handler) SetNotServing() {
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(CatalogServiceName, status)
	h.logger.Info().Str("func", "setStatus").Str("status", status.String()).Msg("gRPC health status changed")
}
