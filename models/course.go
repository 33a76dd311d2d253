// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CoursesPageSize is the fixed number of courses returned per listing page.
const CoursesPageSize = 10

// MaxCoursesPage is the highest page number accepted by the listing. It is
// repeated in the `validate` tag of CourseFilter.Page.
const MaxCoursesPage = 1_000_000

// CourseOrder is the column a course listing is sorted by.
type CourseOrder string

const (
	CourseOrderByID    CourseOrder = "id"
	CourseOrderByTitle CourseOrder = "title"
)

// Course is a full course record as returned by the single-course lookup.
type Course struct {
	// ID is the UUID primary key of the course.
	ID string `json:"id"`

	// Title is the human-readable course name.
	Title string `json:"title"`

	// Description is optional; nil is serialized as JSON null.
	Description *string `json:"description"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseSummary is one row of the course listing: the course and the number
// of enrollments it has.
type CourseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Enrollments int64  `json:"enrollments"`
}

// NewCourse is the payload for creating a course.
type NewCourse struct {
	ID          string  `json:"-"`
	Title       string  `json:"title" validate:"required,min=5"`
	Description *string `json:"description,omitempty"`
}

// CourseFilter describes one page of the course listing.
//
// Search is matched case-insensitively as a literal substring of the title.
// An empty Search means no filter.
type CourseFilter struct {
	Search  string      `json:"search" validate:"omitempty,min=2,max=100"`
	OrderBy CourseOrder `json:"orderBy" validate:"required,oneof=id title"`
	Page    int         `json:"page" validate:"min=1,max=1000000"`
}

// Offset returns the number of rows skipped before the requested page.
func (f CourseFilter) Offset() int {
	page := min(max(f.Page, 1), MaxCoursesPage)
	return (page - 1) * CoursesPageSize
}

// CoursePage is the result of a listing: the requested page and the number
// of courses matching the filter regardless of pagination.
type CoursePage struct {
	Courses []CourseSummary `json:"courses"`
	Total   int64           `json:"total"`
}

// CourseLookup carries the identifier of a single course lookup.
type CourseLookup struct {
	ID string `json:"id" validate:"required,uuid"`
}
