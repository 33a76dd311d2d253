// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenSignKeyIsNotSpecified = errors.New("token sign key is not specified")
	ErrTokenCreationFailed        = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid    = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSeedUnknownUser   = errors.New("seed enrollment references unknown user")
	ErrSeedUnknownCourse = errors.New("seed enrollment references unknown course")
)
