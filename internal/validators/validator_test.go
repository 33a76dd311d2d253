// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/course-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructValidator_Credentials(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		input    models.Credentials
		wantErr  bool
		contains []string
	}{
		{name: "valid", input: models.Credentials{Email: "a@b.com", Password: "123456"}},
		{name: "bad email", input: models.Credentials{Email: "nope", Password: "123456"}, wantErr: true, contains: []string{"email must be a valid email"}},
		{name: "short password", input: models.Credentials{Email: "a@b.com", Password: "12345"}, wantErr: true, contains: []string{"password must be at least 6 characters long"}},
		{name: "both missing", input: models.Credentials{}, wantErr: true, contains: []string{"email is required", "password is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			for _, msg := range tt.contains {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestStructValidator_NewCourse(t *testing.T) {
	v := NewStructValidator()

	assert.NoError(t, v.Validate(context.Background(), models.NewCourse{Title: "Go 101"}))
	assert.NoError(t, v.Validate(context.Background(), &models.NewCourse{Title: "Çurso"}))

	err := v.Validate(context.Background(), models.NewCourse{Title: "Go"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "title must be at least 5 characters long", err.Error())
}

func TestStructValidator_CourseFilter(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name    string
		filter  models.CourseFilter
		wantMsg string
	}{
		{name: "defaults", filter: models.CourseFilter{OrderBy: models.CourseOrderByID, Page: 1}},
		{name: "search and title", filter: models.CourseFilter{Search: "go", OrderBy: models.CourseOrderByTitle, Page: 3}},
		{name: "search too short", filter: models.CourseFilter{Search: "g", OrderBy: models.CourseOrderByID, Page: 1}, wantMsg: "search must be at least 2 characters long"},
		{name: "search too long", filter: models.CourseFilter{Search: strings.Repeat("a", 101), OrderBy: models.CourseOrderByID, Page: 1}, wantMsg: "search must be at most 100 characters long"},
		{name: "bad order", filter: models.CourseFilter{OrderBy: "created_at", Page: 1}, wantMsg: "orderBy must be one of: id, title"},
		{name: "page zero", filter: models.CourseFilter{OrderBy: models.CourseOrderByID, Page: 0}, wantMsg: "page must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.filter)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestStructValidator_CourseLookup(t *testing.T) {
	v := NewStructValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CourseLookup{ID: "0199f3a2-7c1e-7b8a-9d2e-3f4a5b6c7d8e"}))

	err := v.Validate(context.Background(), models.CourseLookup{ID: "123"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "id must be a valid UUID", err.Error())
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), models.Credentials{Email: "a@b.com"}, "Email")
	assert.NoError(t, err)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), "not a struct")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, errors.Is(err, ErrValidation))
}
