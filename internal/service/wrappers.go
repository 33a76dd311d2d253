// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// CourseServiceWrapper defines middleware composition for CourseService.
type CourseServiceWrapper interface {
	Wrap(CourseService) CourseService
}
