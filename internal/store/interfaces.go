// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users, courses and enrollments
// on PostgreSQL through database/sql and the pgx driver. Queries are built
// with squirrel and database errors are translated into the sentinels
// declared in errors.go.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/course-keeper/models"
)

// CourseRepository reads and creates courses.
type CourseRepository interface {
	// CreateCourse inserts a course and returns its id.
	CreateCourse(ctx context.Context, course models.NewCourse) (string, error)

	// ListCourses returns one page of courses matching filter, each with its
	// enrollment count.
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseSummary, error)

	// CountCourses returns how many courses match filter.Search.
	CountCourses(ctx context.Context, filter models.CourseFilter) (int64, error)

	// FindCourseByID returns [ErrCourseNotFound] when no course has the id.
	FindCourseByID(ctx context.Context, id string) (models.Course, error)
}

// UserRepository looks up and creates user accounts.
type UserRepository interface {
	// FindUserByEmail returns [ErrUserNotFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CreateUser returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// EnrollmentRepository links users to courses.
type EnrollmentRepository interface {
	// CreateEnrollment returns [ErrAlreadyEnrolled] for a duplicate pair.
	CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
