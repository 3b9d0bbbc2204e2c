// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName   = errors.New("firstName is required")
	ErrEmptyLastName    = errors.New("lastName is required")
	ErrInvalidEmail     = errors.New("email must be a valid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes long")
	ErrEmptyRole        = errors.New("role is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidEpisodeID = errors.New("episode_id must be a positive number")
	ErrEmptyCrawl       = errors.New("opening_crawl is required")
	ErrEmptyDirector    = errors.New("director is required")
	ErrEmptyProducer    = errors.New("producer is required")
	ErrEmptyReleaseDate = errors.New("release_date is required")
	ErrEmptyURL         = errors.New("url is required")
)
