// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Enrollment links a user to a course. The API only ever counts enrollments
// per course; rows are written by the seeder.
type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Enrollment model.
func (e Enrollment) TableName() string {
	return "enrollments"
}
