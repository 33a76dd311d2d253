// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/mock"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

const courseID = "0199f3a2-7c1e-7b8a-9d2e-3f4a5b6c7d8e"

func newTestCourseSvc(t *testing.T) (*courseService, *mock.MockCourseRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCourseRepository(ctrl)

	return &courseService{
		courseRepository: repo,
		ids:              fixedID(courseID),
		logger:           logger.Nop(),
	}, repo
}

func strPtr(s string) *string { return &s }

// ── CreateCourse ─────────────────────────────────────────────────────────────

func TestCourseService_CreateCourse(t *testing.T) {
	svc, repo := newTestCourseSvc(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateCourse(ctx, models.NewCourse{ID: courseID, Title: "Go Basics", Description: strPtr("intro")}).
		Return(courseID, nil)

	id, err := svc.CreateCourse(ctx, models.NewCourse{Title: "Go Basics", Description: strPtr("intro")})
	require.NoError(t, err)
	assert.Equal(t, courseID, id)
}

func TestCourseService_CreateCourse_RepositoryError(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return("", store.ErrExecutingQuery)

	_, err := svc.CreateCourse(context.Background(), models.NewCourse{Title: "Go Basics"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestNewCourseService_GeneratesUUIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCourseRepository(ctrl)
	svc := NewCourseService(repo, logger.Nop())

	var stored models.NewCourse
	repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.NewCourse) (string, error) {
			stored = c
			return c.ID, nil
		})

	id, err := svc.CreateCourse(context.Background(), models.NewCourse{Title: "Go Basics"})
	require.NoError(t, err)
	assert.True(t, utils.IsUUID(id))
	assert.Equal(t, stored.ID, id)
}

// ── ListCourses ──────────────────────────────────────────────────────────────

func TestCourseService_ListCourses(t *testing.T) {
	filter := models.CourseFilter{Search: "go", OrderBy: models.CourseOrderByTitle, Page: 2}

	t.Run("page and total", func(t *testing.T) {
		svc, repo := newTestCourseSvc(t)
		courses := []models.CourseSummary{{ID: courseID, Title: "Go Basics", Enrollments: 3}}

		repo.EXPECT().ListCourses(gomock.Any(), filter).Return(courses, nil)
		repo.EXPECT().CountCourses(gomock.Any(), filter).Return(int64(11), nil)

		page, err := svc.ListCourses(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, models.CoursePage{Courses: courses, Total: 11}, page)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		svc, repo := newTestCourseSvc(t)

		repo.EXPECT().ListCourses(gomock.Any(), filter).Return(nil, nil)
		repo.EXPECT().CountCourses(gomock.Any(), filter).Return(int64(0), nil)

		page, err := svc.ListCourses(context.Background(), filter)
		require.NoError(t, err)
		assert.NotNil(t, page.Courses)
		assert.Empty(t, page.Courses)
	})

	t.Run("page query fails", func(t *testing.T) {
		svc, repo := newTestCourseSvc(t)

		repo.EXPECT().ListCourses(gomock.Any(), filter).Return(nil, store.ErrExecutingQuery)
		repo.EXPECT().CountCourses(gomock.Any(), filter).Return(int64(4), nil).AnyTimes()

		page, err := svc.ListCourses(context.Background(), filter)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.Equal(t, models.CoursePage{}, page)
	})

	t.Run("count query fails", func(t *testing.T) {
		svc, repo := newTestCourseSvc(t)

		repo.EXPECT().ListCourses(gomock.Any(), filter).Return([]models.CourseSummary{}, nil).AnyTimes()
		repo.EXPECT().CountCourses(gomock.Any(), filter).Return(int64(0), store.ErrScanningRow)

		_, err := svc.ListCourses(context.Background(), filter)
		assert.ErrorIs(t, err, store.ErrScanningRow)
	})
}

// ── GetCourse ────────────────────────────────────────────────────────────────

func TestCourseService_GetCourse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newTestCourseSvc(t)
		course := models.Course{ID: courseID, Title: "Go Basics"}

		repo.EXPECT().FindCourseByID(gomock.Any(), courseID).Return(course, nil)

		got, err := svc.GetCourse(context.Background(), courseID)
		require.NoError(t, err)
		assert.Equal(t, course, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestCourseSvc(t)

		repo.EXPECT().FindCourseByID(gomock.Any(), courseID).Return(models.Course{}, store.ErrCourseNotFound)

		_, err := svc.GetCourse(context.Background(), courseID)
		assert.True(t, errors.Is(err, store.ErrCourseNotFound))
	})
}

// ── validation wrapper ───────────────────────────────────────────────────────

func TestCourseValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockCourseService(ctrl)
	svc := NewCourseValidationService(newStructValidator()).Wrap(inner)
	ctx := context.Background()

	t.Run("short title is rejected before insert", func(t *testing.T) {
		_, err := svc.CreateCourse(ctx, models.NewCourse{Title: "Go"})
		assertValidationError(t, err)
	})

	t.Run("valid course is forwarded", func(t *testing.T) {
		course := models.NewCourse{Title: "Go Basics"}
		inner.EXPECT().CreateCourse(gomock.Any(), course).Return(courseID, nil)

		id, err := svc.CreateCourse(ctx, course)
		require.NoError(t, err)
		assert.Equal(t, courseID, id)
	})

	invalidFilters := map[string]models.CourseFilter{
		"search too short": {Search: "g", OrderBy: models.CourseOrderByID, Page: 1},
		"unknown order":    {OrderBy: "enrollments", Page: 1},
		"page zero":        {OrderBy: models.CourseOrderByID, Page: 0},
		"page too large":   {OrderBy: models.CourseOrderByID, Page: math.MaxInt64 / 5},
	}
	for name, filter := range invalidFilters {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ListCourses(ctx, filter)
			assertValidationError(t, err)
		})
	}

	t.Run("valid filter is forwarded", func(t *testing.T) {
		filter := models.CourseFilter{Search: "go", OrderBy: models.CourseOrderByTitle, Page: 3}
		inner.EXPECT().ListCourses(gomock.Any(), filter).Return(models.CoursePage{Courses: []models.CourseSummary{}}, nil)

		_, err := svc.ListCourses(ctx, filter)
		require.NoError(t, err)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		_, err := svc.GetCourse(ctx, "not-a-uuid")
		assertValidationError(t, err)
	})

	t.Run("uuid is forwarded", func(t *testing.T) {
		inner.EXPECT().GetCourse(gomock.Any(), courseID).Return(models.Course{ID: courseID}, nil)

		_, err := svc.GetCourse(ctx, courseID)
		require.NoError(t, err)
	})
}
