// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of course-keeper: credential
// checks and session tokens, course listing and creation, readiness and
// database seeding. Services depend on store repositories through interfaces
// and are decorated by validation wrappers that reject bad input before any
// data access happens.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/course-keeper/models"
)

type AuthService interface {
	// Login returns the user owning creds, or ErrInvalidCredentials when the
	// email is unknown or the password does not match.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CourseService interface {
	CreateCourse(ctx context.Context, course models.NewCourse) (string, error)
	ListCourses(ctx context.Context, filter models.CourseFilter) (models.CoursePage, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ready reports whether every dependency needed to serve requests is
	// reachable.
	Ready(ctx context.Context) error
}

type SeedService interface {
	Seed(ctx context.Context, data models.SeedData) (models.SeedReport, error)
}
