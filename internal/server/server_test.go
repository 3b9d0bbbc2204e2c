// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/handler"
	myGRPC "github.com/MKhiriev/movie-catalog/internal/handler/grpc"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HandlerMissingForAddress(t *testing.T) {
	// An address without a built handler does not produce a server.
	s, err := NewServer(&handler.Handlers{}, config.Server{GRPCAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_RunServerWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.RunServer(), errNoServersToRun)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.Server{
		GRPCAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}
	grpcHandler := myGRPC.NewHandler(logger.Nop())

	s, err := NewServer(&handler.Handlers{GRPC: grpcHandler}, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGRPCServer_ShutdownReportsNotServing(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(logger.Nop())
	g := newGRPCServer(grpcHandler, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())

	grpcHandler.SetServing()
	require.NoError(t, g.Shutdown(context.Background()))

	var captured healthCapture
	grpcHandler.Register(&captured)
	resp, err := captured.server.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	h := newHTTPServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, h.Shutdown(context.Background()))
	// ListenAndServe after Shutdown reports http.ErrServerClosed, which is
	// a graceful stop.
	assert.NoError(t, h.RunServer())
}
