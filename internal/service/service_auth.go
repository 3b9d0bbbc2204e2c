// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/internal/utils"
	"github.com/MKhiriev/movie-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, role changes and
// access token parsing, using a UserRepository for persistence and bcrypt
// for password digests.
type authService struct {
	// transactor wraps sign-up and role changes in one unit of work.
	transactor store.Transactor

	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokens *tokenIssuer

	// hashCost is the bcrypt cost used for new password digests.
	hashCost int

	// allowAdminSignUp makes SignUp honor the IsAdmin flag of the request.
	allowAdminSignUp bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(transactor store.Transactor, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		transactor:       transactor,
		userRepository:   userRepository,
		tokens:           newTokenIssuer(cfg),
		hashCost:         cfg.PasswordHashCost,
		allowAdminSignUp: cfg.AllowAdminSignUp,
		logger:           logger,
	}
}

// SignUp registers a new account and returns its token pair.
//
// The email pre-check runs in the same transaction as the insert; the unique
// index on users.email catches concurrent registrations that slip past it.
// The requested ADMIN role is granted only when admin self-registration is
// enabled.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) models.Response[models.AuthPayload] {
	var payload models.AuthPayload

	err := a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
		switch {
		case err == nil:
			return badRequest(MsgEmailAlreadyRegistered)
		case !errors.Is(err, store.ErrUserNotFound):
			return fmt.Errorf("error checking email: %w", err)
		}

		digest, err := utils.HashPassword(req.Password, a.hashCost)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		role := models.RegularUser
		if req.IsAdmin && a.allowAdminSignUp {
			role = models.Admin
		}

		user, err := a.userRepository.CreateUser(ctx, models.User{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			PasswordDigest: digest,
			Role:           role,
		})
		if err != nil {
			if errors.Is(err, store.ErrEmailAlreadyExists) {
				return badRequest(MsgEmailAlreadyRegistered)
			}
			if errors.Is(err, store.ErrValueTooLong) {
				return badRequest(MsgValueTooLong)
			}
			return fmt.Errorf("user creation ended with error: %w", err)
		}

		tokens, err := a.tokens.IssueTokenPair(user.ID)
		if err != nil {
			return err
		}

		payload = authPayload(user, tokens)
		return nil
	})
	if err != nil {
		logFailure(ctx, "authService.SignUp", err)
		return failure[models.AuthPayload](err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "authService.SignUp").
		Str("email", payload.Email).
		Msg("user signed up")

	return success(payload, MsgSignUpSuccess)
}

// SignIn checks the credentials and returns a fresh token pair. It reads
// outside any transaction.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) models.Response[models.AuthPayload] {
	payload, err := a.signIn(ctx, req)
	if err != nil {
		logFailure(ctx, "authService.SignIn", err)
		return failure[models.AuthPayload](err)
	}
	return success(payload, MsgSignInSuccess)
}

func (a *authService) signIn(ctx context.Context, req models.SignInRequest) (models.AuthPayload, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthPayload{}, badRequest(MsgUserNotFound)
		}
		return models.AuthPayload{}, fmt.Errorf("user search by email failed: %w", err)
	}

	matches, err := utils.ComparePassword(req.Password, user.PasswordDigest)
	if err != nil {
		return models.AuthPayload{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !matches {
		return models.AuthPayload{}, badRequest(MsgWrongPassword)
	}

	tokens, err := a.tokens.IssueTokenPair(user.ID)
	if err != nil {
		return models.AuthPayload{}, err
	}

	return authPayload(user, tokens), nil
}

// ChangeUserRole lets an ADMIN set the role of the account registered under
// req.Email.
func (a *authService) ChangeUserRole(ctx context.Context, callerID string, req models.ChangeUserRoleRequest) models.Response[models.ChangeUserRolePayload] {
	var payload models.ChangeUserRolePayload

	err := a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := authorizeCaller(ctx, a.userRepository, callerID, OperationChangeUserRole, MsgNotAllowedChangeUserRole); err != nil {
			return err
		}

		role, err := models.ParseRole(req.Role)
		if err != nil {
			return badRequest(MsgInvalidUserRole)
		}

		target, err := a.userRepository.FindUserByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return badRequest(MsgUserDoesNotExist)
			}
			return fmt.Errorf("user search by email failed: %w", err)
		}

		updated, err := a.userRepository.SetUserRole(ctx, target.ID, role)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return badRequest(MsgUserDoesNotExist)
			}
			return fmt.Errorf("error setting user role: %w", err)
		}

		payload = models.ChangeUserRolePayload{Email: updated.Email, NewRole: updated.Role}
		return nil
	})
	if err != nil {
		logFailure(ctx, "authService.ChangeUserRole", err)
		return failure[models.ChangeUserRolePayload](err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "authService.ChangeUserRole").
		Str("caller_id", callerID).
		Str("email", payload.Email).
		Str("role", payload.NewRole.String()).
		Msg("user role changed")

	return success(payload, MsgUserRoleChanged)
}

// ParseAccessToken validates and parses a raw access token.
//
// Any validation failure (expired, wrong issuer, wrong secret, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.tokens.ParseAccessToken(tokenString)
}

func authPayload(user models.User, tokens models.TokenPair) models.AuthPayload {
	return models.AuthPayload{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Tokens:    tokens,
	}
}
