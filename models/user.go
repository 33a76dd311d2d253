// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that can log in and receive a session token.
// Users are created by the seeder only; the API never mutates them.
type User struct {
	// ID is the UUID primary key of the user. It becomes the "sub" claim of
	// every token issued for this user.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the argon2id PHC-encoded password hash.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role controls access to instructor-only routes.
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login payload accepted by POST /sessions.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
