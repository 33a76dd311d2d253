// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/models"
)

type enrollmentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewEnrollmentRepository(db *DB, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating enrollment repository")
	return &enrollmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEnrollment stores the pair and returns it with created_at filled in.
// A missing user or course yields [ErrReferenceNotFound].
func (r *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEnrollmentQuery(ctx, enrollment)
	if err != nil {
		return models.Enrollment{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&enrollment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.CreateEnrollment").Msg("error inserting enrollment")
		if mapped := classifyPgError(err, nil, ErrAlreadyEnrolled); mapped != nil {
			return models.Enrollment{}, mapped
		}
		return models.Enrollment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return enrollment, nil
}
