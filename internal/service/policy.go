// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/store"
	"github.com/MKhiriev/movie-catalog/models"
)

// Operation names a guarded catalog action.
type Operation int

const (
	OperationChangeUserRole Operation = iota + 1
	OperationListMovies
	OperationGetMovie
	OperationCreateMovie
	OperationUpdateMovie
	OperationDeleteMovie
	OperationSeedCatalog
)

var operationNames = map[Operation]string{
	OperationChangeUserRole: "change_user_role",
	OperationListMovies:     "list_movies",
	OperationGetMovie:       "get_movie",
	OperationCreateMovie:    "create_movie",
	OperationUpdateMovie:    "update_movie",
	OperationDeleteMovie:    "delete_movie",
	OperationSeedCatalog:    "seed_catalog",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(o))
}

// permissions lists the roles allowed to perform each operation.
// Fetching a single movie is open to REGULAR_USER only.
var permissions = map[Operation][]models.Role{
	OperationChangeUserRole: {models.Admin},
	OperationListMovies:     {models.Admin, models.RegularUser},
	OperationGetMovie:       {models.RegularUser},
	OperationCreateMovie:    {models.Admin},
	OperationUpdateMovie:    {models.Admin},
	OperationDeleteMovie:    {models.Admin},
	OperationSeedCatalog:    {models.Admin},
}

// Permits reports whether role may perform op. Unknown roles and operations
// are denied.
func Permits(role models.Role, op Operation) bool {
	for _, allowed := range permissions[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// authorizeCaller loads the caller and checks op against the policy. A caller
// that does not resolve is denied with the same message as a forbidden role.
func authorizeCaller(ctx context.Context, users store.UserRepository, callerID string, op Operation, deniedMessage string) (models.User, error) {
	caller, err := users.FindUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, badRequest(deniedMessage)
		}
		return models.User{}, fmt.Errorf("error loading caller: %w", err)
	}

	if !Permits(caller.Role, op) {
		return models.User{}, badRequest(deniedMessage)
	}

	return caller, nil
}
