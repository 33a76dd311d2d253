// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"

	"github.com/MKhiriev/course-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestDemoData(t *testing.T) {
	data := demoData()

	roles := map[models.Role]int{}
	emails := map[string]bool{}
	for _, u := range data.Users {
		roles[u.Role]++
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true
		assert.Len(t, u.Password, 6)
	}
	assert.Equal(t, 9, roles[models.RoleStudent])
	assert.Equal(t, 1, roles[models.RoleInstructor])

	titles := map[string]bool{}
	for _, c := range data.Courses {
		assert.GreaterOrEqual(t, len(c.Title), 5)
		titles[c.Title] = true
	}
	assert.Len(t, data.Courses, 3)

	assert.Len(t, data.Enrollments, 3)
	for _, e := range data.Enrollments {
		assert.True(t, emails[e.Email])
		assert.True(t, titles[e.CourseTitle])
	}
}
