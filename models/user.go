// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the storage-assigned unique identifier of the user (UUID v7).
	ID string `json:"id"`

	// FirstName is the given name of the user.
	FirstName string `json:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"lastName"`

	// Email is the unique, case-sensitive login identifier.
	Email string `json:"email"`

	// PasswordDigest is the bcrypt digest of the user's password.
	// It is never serialized.
	PasswordDigest string `json:"-"`

	// Role gates the operations the user may perform. Defaults to RegularUser.
	Role Role `json:"userRole"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
