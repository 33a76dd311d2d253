// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration values are missing
// or invalid. A server must not start with any of them.
var (
	// ErrTokenSignKeyIsNotSpecified indicates that no secret for signing
	// session tokens was configured.
	ErrTokenSignKeyIsNotSpecified = errors.New("token sign key is not specified")

	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")

	// ErrInvalidPasswordHashParams indicates a zero argon2id cost parameter.
	ErrInvalidPasswordHashParams = errors.New("invalid password hash parameters")

	// ErrDSNIsNotSpecified indicates a missing database connection string.
	ErrDSNIsNotSpecified = errors.New("database DSN is not specified")

	// ErrServerAddressIsNotSpecified indicates a missing HTTP listen address.
	ErrServerAddressIsNotSpecified = errors.New("server address is not specified")
)
