// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/models"
)

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository].
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course models.NewCourse) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCourseQuery(ctx, course)
	if err != nil {
		return "", err
	}

	var id string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
		if mapped := classifyPgError(err, nil, nil); mapped != nil {
			return "", mapped
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

// ListCourses returns an empty, non-nil slice when nothing matches.
func (r *courseRepository) ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.CourseSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error listing courses")
		if mapped := classifyPgError(err, nil, nil); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.CourseSummary, 0, models.CoursesPageSize)
	for rows.Next() {
		var c models.CourseSummary
		if err := rows.Scan(&c.ID, &c.Title, &c.Enrollments); err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating course rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

func (r *courseRepository) CountCourses(ctx context.Context, filter models.CourseFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCoursesQuery(ctx, filter)
	if err != nil {
		return 0, err
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*courseRepository.CountCourses").Msg("error counting courses")
		if mapped := classifyPgError(err, nil, nil); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// FindCourseByID maps both a missing row and a malformed id to
// [ErrCourseNotFound].
func (r *courseRepository) FindCourseByID(ctx context.Context, id string) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCourseByIDQuery(ctx, id)
	if err != nil {
		return models.Course{}, err
	}

	var course models.Course
	var description sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&course.ID, &course.Title, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error finding course")
		if mapped := classifyPgError(err, ErrCourseNotFound, nil); mapped != nil {
			return models.Course{}, mapped
		}
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if description.Valid {
		course.Description = &description.String
	}

	return course, nil
}
