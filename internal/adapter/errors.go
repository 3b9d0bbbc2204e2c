// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUpstreamStatus = errors.New("catalog responded with non-2xx status")
	ErrNotFound       = errors.New("catalog resource not found")
	ErrUnavailable    = errors.New("catalog unavailable")
	ErrDecodeResponse = errors.New("cannot decode catalog response")
	ErrInvalidAddress = errors.New("invalid catalog address")
)
