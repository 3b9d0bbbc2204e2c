// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

// tokenIssuer mints access and refresh tokens with separate secrets, so a
// refresh token never passes access-token validation.
type tokenIssuer struct {
	issuer string

	accessSecret string
	accessTTL    time.Duration

	refreshSecret string
	refreshTTL    time.Duration
}

func newTokenIssuer(cfg config.App) *tokenIssuer {
	return &tokenIssuer{
		issuer:        cfg.TokenIssuer,
		accessSecret:  cfg.AccessTokenSecret,
		accessTTL:     cfg.AccessTokenDuration,
		refreshSecret: cfg.RefreshTokenSecret,
		refreshTTL:    cfg.RefreshTokenDuration,
	}
}

// IssueTokenPair signs both tokens with sub = userID.
func (t *tokenIssuer) IssueTokenPair(userID string) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(t.issuer, userID, t.accessTTL, t.accessSecret)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: access token: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(t.issuer, userID, t.refreshTTL, t.refreshSecret)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: refresh token: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
	}, nil
}

// ParseAccessToken validates tokenString with the access secret. Any
// validation failure is reported as [ErrTokenIsExpiredOrInvalid].
func (t *tokenIssuer) ParseAccessToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.accessSecret, t.issuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
