// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/validators"
	"github.com/MKhiriev/course-keeper/models"
)

// CourseValidationService checks course payloads, filters and ids before
// they reach the wrapped CourseService.
type CourseValidationService struct {
	inner     CourseService
	validator validators.Validator
}

func NewCourseValidationService(validator validators.Validator) CourseServiceWrapper {
	return &CourseValidationService{
		validator: validator,
	}
}

func (v *CourseValidationService) CreateCourse(ctx context.Context, course models.NewCourse) (string, error) {
	if err := v.validator.Validate(ctx, course); err != nil {
		return "", fmt.Errorf("invalid course: %w", err)
	}

	return v.inner.CreateCourse(ctx, course)
}

func (v *CourseValidationService) ListCourses(ctx context.Context, filter models.CourseFilter) (models.CoursePage, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return models.CoursePage{}, fmt.Errorf("invalid course filter: %w", err)
	}

	return v.inner.ListCourses(ctx, filter)
}

func (v *CourseValidationService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	if err := v.validator.Validate(ctx, models.CourseLookup{ID: id}); err != nil {
		return models.Course{}, fmt.Errorf("invalid course id: %w", err)
	}

	return v.inner.GetCourse(ctx, id)
}

func (v *CourseValidationService) Wrap(wrapped CourseService) CourseService {
	v.inner = wrapped
	return v
}
