// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/movie-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"

	FieldTitle        = "title"
	FieldEpisodeID    = "episode_id"
	FieldOpeningCrawl = "opening_crawl"
	FieldDirector     = "director"
	FieldProducer     = "producer"
	FieldReleaseDate  = "release_date"
	FieldURL          = "url"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var (
	signUpFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	signInFields = []string{FieldEmail, FieldPassword}
	roleFields   = []string{FieldEmail, FieldRole}
	movieFields  = []string{FieldTitle, FieldEpisodeID, FieldOpeningCrawl, FieldDirector, FieldProducer, FieldReleaseDate, FieldURL}
)

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.SignInRequest:
		return v.validateSignIn(value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(*value, fields...)

	case models.ChangeUserRoleRequest:
		return v.validateChangeUserRole(value, fields...)
	case *models.ChangeUserRoleRequest:
		return v.validateChangeUserRole(*value, fields...)

	case models.MovieFields:
		return v.validateMovie(value, fields...)
	case *models.MovieFields:
		return v.validateMovie(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = signUpFields
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if isBlank(req.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if isBlank(req.LastName) {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := checkPassword(req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSignIn(req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = signInFields
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateChangeUserRole checks presence only. Whether the role exists is a
// business rule answered by the service with its own message.
func (v *RequestValidator) validateChangeUserRole(req models.ChangeUserRoleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = roleFields
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldRole:
			if isBlank(req.Role) {
				return ErrEmptyRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateMovie(m models.MovieFields, fields ...string) error {
	if len(fields) == 0 {
		fields = movieFields
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(m.Title) {
				return ErrEmptyTitle
			}
		case FieldEpisodeID:
			if m.EpisodeID <= 0 {
				return ErrInvalidEpisodeID
			}
		case FieldOpeningCrawl:
			if isBlank(m.OpeningCrawl) {
				return ErrEmptyCrawl
			}
		case FieldDirector:
			if isBlank(m.Director) {
				return ErrEmptyDirector
			}
		case FieldProducer:
			if isBlank(m.Producer) {
				return ErrEmptyProducer
			}
		case FieldReleaseDate:
			if isBlank(m.ReleaseDate) {
				return ErrEmptyReleaseDate
			}
		case FieldURL:
			if isBlank(m.URL) {
				return ErrEmptyURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isEmail accepts a bare addr-spec only; display names such as
// "Luke <luke@rebels.org>" are rejected.
func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
