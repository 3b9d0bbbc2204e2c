// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// healthCapture captures the health implementation registered by the handler
// so tests can call it without a network listener.
type healthCapture struct {
	server healthpb.HealthServer
}

func (p *healthCapture) RegisterService(_ *grpc.ServiceDesc, impl any) {
	p.server = impl.(healthpb.HealthServer)
}
