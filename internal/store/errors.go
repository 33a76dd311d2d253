// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCourseNotFound is returned when no course matches the requested id.
	ErrCourseNotFound = errors.New("course not found")

	// ErrUserNotFound is returned when no user matches the requested email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when inserting a user whose email is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAlreadyEnrolled is returned when a user is enrolled twice in the
	// same course.
	ErrAlreadyEnrolled = errors.New("user is already enrolled in course")

	// ErrReferenceNotFound is returned when a row points at a user or course
	// that does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrDatabaseUnavailable is returned when the connection to the database
	// is lost or refused.
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
