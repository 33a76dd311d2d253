// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SeedUser is a user account to create, with its plaintext password.
type SeedUser struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// SeedEnrollment references a seeded user by email and a seeded course by
// title.
type SeedEnrollment struct {
	Email       string
	CourseTitle string
}

// SeedData is the full set of records written by the seeder.
type SeedData struct {
	Users       []SeedUser
	Courses     []NewCourse
	Enrollments []SeedEnrollment
}

// SeedReport counts the records a seeding run created.
type SeedReport struct {
	Users       int
	Courses     int
	Enrollments int
}
