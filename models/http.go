// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateCourseResponse is the body of a successful POST /courses.
type CreateCourseResponse struct {
	CourseID string `json:"courseId"`
}

// GetCourseResponse is the body of a successful GET /courses/{id}.
type GetCourseResponse struct {
	Course Course `json:"course"`
}

// ListCoursesResponse is the body of a successful GET /courses.
type ListCoursesResponse struct {
	Courses []CourseSummary `json:"courses"`
	Total   int64           `json:"total"`
}

// LoginResponse is the body of a successful POST /sessions.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the envelope for validation and lookup failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for domain failures reported to the
// client as a message (e.g. rejected credentials).
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is returned by the health endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}
