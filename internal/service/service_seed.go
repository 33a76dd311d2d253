// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/crypto"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/models"
)

// seedService writes users, courses and enrollments for local development.
// It expects an empty database: a duplicate email or enrollment aborts the
// run.
type seedService struct {
	storages *store.Storages
	hasher   crypto.PasswordHasher
	ids      idGenerator
	logger   *logger.Logger
}

func NewSeedService(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) SeedService {
	return &seedService{
		storages: storages,
		hasher:   hasher,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (s *seedService) Seed(ctx context.Context, data models.SeedData) (models.SeedReport, error) {
	var report models.SeedReport

	userIDs := make(map[string]string, len(data.Users))
	for _, u := range data.Users {
		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return report, fmt.Errorf("hashing password of %s: %w", u.Email, err)
		}

		created, err := s.storages.UserRepository.CreateUser(ctx, models.User{
			ID:           s.ids.Generate(),
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         u.Role,
		})
		if err != nil {
			return report, fmt.Errorf("creating user %s: %w", u.Email, err)
		}
		userIDs[u.Email] = created.ID
		report.Users++
	}

	courseIDs := make(map[string]string, len(data.Courses))
	for _, c := range data.Courses {
		c.ID = s.ids.Generate()
		id, err := s.storages.CourseRepository.CreateCourse(ctx, c)
		if err != nil {
			return report, fmt.Errorf("creating course %q: %w", c.Title, err)
		}
		courseIDs[c.Title] = id
		report.Courses++
	}

	for _, e := range data.Enrollments {
		userID, ok := userIDs[e.Email]
		if !ok {
			return report, fmt.Errorf("%w: %s", ErrSeedUnknownUser, e.Email)
		}
		courseID, ok := courseIDs[e.CourseTitle]
		if !ok {
			return report, fmt.Errorf("%w: %s", ErrSeedUnknownCourse, e.CourseTitle)
		}

		_, err := s.storages.EnrollmentRepository.CreateEnrollment(ctx, models.Enrollment{
			ID:       s.ids.Generate(),
			UserID:   userID,
			CourseID: courseID,
		})
		if err != nil {
			return report, fmt.Errorf("enrolling %s in %q: %w", e.Email, e.CourseTitle, err)
		}
		report.Enrollments++
	}

	logger.FromContext(ctx).Info().
		Int("users", report.Users).
		Int("courses", report.Courses).
		Int("enrollments", report.Enrollments).
		Msg("database seeded")

	return report, nil
}
