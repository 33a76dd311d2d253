// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the
// course-keeper API, so every handler answers with the same wording.
package app

const (
	// MsgInvalidCredentials is the "message" of a failed login. It is the
	// same for an unknown email and a wrong password.
	MsgInvalidCredentials = "Credenciais Inválidas."

	// MsgCourseNotFound is the "error" of a lookup for an unknown course id.
	MsgCourseNotFound = "Course not found"

	// MsgInternalServerError hides the cause of unexpected failures.
	MsgInternalServerError = "internal server error"

	// MsgDatabaseUnavailable is returned by the readiness check and by
	// requests that failed because the database could not be reached.
	MsgDatabaseUnavailable = "database unavailable"

	// MsgStatusOK is the status reported by the health endpoints.
	MsgStatusOK = "ok"
)
