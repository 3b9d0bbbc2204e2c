// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the movie catalog.
//
// It wires the chi router, decodes and validates request payloads, resolves
// the caller from the bearer token and copies the status code of each
// service envelope onto the wire. Tracing, access logging, response
// compression and request timeouts are handled here before requests reach
// the service layer.
package http
