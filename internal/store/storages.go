// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/course-keeper/internal/logger"

// Storages aggregates every repository backed by one connection pool.
type Storages struct {
	CourseRepository     CourseRepository
	UserRepository       UserRepository
	EnrollmentRepository EnrollmentRepository
	HealthChecker        HealthChecker
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CourseRepository:     NewCourseRepository(db, log),
		UserRepository:       NewUserRepository(db, log),
		EnrollmentRepository: NewEnrollmentRepository(db, log),
		HealthChecker:        db,
	}
}
