// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// Messages of controlled failures and successful operations, as returned in
// the response envelope.
const (
	MsgSomethingWentWrong = "Something went wrong!"

	MsgSignUpSuccess          = "Sign Up successfully!"
	MsgEmailAlreadyRegistered = "This email is already registered!"

	MsgSignInSuccess = "Sign In successfully!"
	MsgUserNotFound  = "User not found!"
	MsgWrongPassword = "Wrong password!"

	MsgUserRoleChanged          = "User role changed successfully!"
	MsgNotAllowedChangeUserRole = "You are not allowed to change the User Role"
	MsgInvalidUserRole          = "Invalid user role"
	MsgUserDoesNotExist         = "User does not exist"

	MsgMoviesFetched      = "Request successfully!"
	MsgNotAllowedGetMovie = "You are not allowed to get a movie"

	MsgMovieCreated          = "Movie created successfully!"
	MsgNotAllowedCreateMovie = "You are not allowed to create a new movie"
	MsgErrorCreatingMovie    = "Error while creating Movie"

	MsgMovieUpdated          = "Movie updated successfully!"
	MsgNotAllowedUpdateMovie = "You are not allowed to update a movie"
	MsgErrorUpdatingMovie    = "Error while updating Movie"

	MsgMovieDeleted          = "Movie deleted successfully!"
	MsgNotAllowedDeleteMovie = "You are not allowed to delete a movie"
	MsgErrorDeletingMovie    = "Error while deleting Movie"

	MsgMovieDoesNotExist = "The movie does not exist"

	MsgValueTooLong = "A field value is too long"

	MsgCatalogSeeded  = "Database seeded successfully!"
	MsgNotAllowedSeed = "You are not allowed to seed the database"
	MsgAlreadySeeded  = "Database already seeded with movies"
	MsgUpstreamFailed = "Request processed with errors"
	MsgUpstreamEmpty  = "External catalog returned no movies"
)

// ControlledError is an anticipated failure raised at a decision point. Its
// Message and StatusCode are copied into the response envelope unchanged.
type ControlledError struct {
	Message    string
	StatusCode int
}

func (e *ControlledError) Error() string {
	return e.Message
}

func badRequest(message string) *ControlledError {
	return &ControlledError{Message: message, StatusCode: http.StatusBadRequest}
}

func internalFailure(message string) *ControlledError {
	return &ControlledError{Message: message, StatusCode: http.StatusInternalServerError}
}
