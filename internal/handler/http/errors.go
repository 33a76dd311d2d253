// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged when a protected route is called
	// without a usable "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoIdentityInContext means requireRole ran without authenticate in
	// front of it. It is a routing bug, answered with 500.
	ErrNoIdentityInContext = errors.New("no identity in request context")

	// ErrInvalidJSON is returned to the client when the request body does not
	// decode into the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidPage is returned when the "page" query parameter is not an
	// integer.
	ErrInvalidPage = errors.New("page must be an integer")
)
