// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/models"
	"golang.org/x/sync/errgroup"
)

type idGenerator interface {
	Generate() string
}

type courseService struct {
	courseRepository store.CourseRepository
	ids              idGenerator
	logger           *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// CreateCourse assigns a fresh UUIDv7 to the course and stores it.
func (s *courseService) CreateCourse(ctx context.Context, course models.NewCourse) (string, error) {
	log := logger.FromContext(ctx)

	course.ID = s.ids.Generate()

	id, err := s.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Str("title", course.Title).Msg("course creation failed")
		return "", fmt.Errorf("course creation failed: %w", err)
	}

	log.Info().Str("course_id", id).Msg("course created")
	return id, nil
}

// ListCourses fetches the requested page and the total number of matching
// courses concurrently. Both use the same search predicate; if either query
// fails the whole listing fails.
func (s *courseService) ListCourses(ctx context.Context, filter models.CourseFilter) (models.CoursePage, error) {
	var page models.CoursePage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		courses, err := s.courseRepository.ListCourses(gctx, filter)
		if err != nil {
			return fmt.Errorf("listing courses failed: %w", err)
		}
		page.Courses = courses
		return nil
	})
	g.Go(func() error {
		total, err := s.courseRepository.CountCourses(gctx, filter)
		if err != nil {
			return fmt.Errorf("counting courses failed: %w", err)
		}
		page.Total = total
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("course listing failed")
		return models.CoursePage{}, err
	}

	if page.Courses == nil {
		page.Courses = []models.CourseSummary{}
	}
	return page, nil
}

// GetCourse returns store.ErrCourseNotFound (wrapped) for unknown ids.
func (s *courseService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("course lookup failed: %w", err)
	}

	return course, nil
}
