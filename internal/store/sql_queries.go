// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/course-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL ($1, $2, ...) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a user search term into an ILIKE pattern that
// matches it as a literal substring.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// courseSearchPredicate returns the WHERE predicate shared by the listing
// and count queries, or nil when search is empty.
func courseSearchPredicate(search string) sq.Sqlizer {
	if search == "" {
		return nil
	}
	return sq.ILike{"c.title": containsPattern(search)}
}

func courseOrderColumns(order models.CourseOrder) []string {
	if order == models.CourseOrderByTitle {
		return []string{"c.title ASC", "c.id ASC"}
	}
	return []string{"c.id ASC"}
}

// buildListCoursesQuery selects one page of courses with their enrollment
// counts.
func buildListCoursesQuery(ctx context.Context, filter models.CourseFilter) (string, []any, error) {
	q := psql.
		Select("c.id", "c.title", "COUNT(e.id) AS enrollments").
		From("courses c").
		LeftJoin("enrollments e ON e.course_id = c.id")

	if pred := courseSearchPredicate(filter.Search); pred != nil {
		q = q.Where(pred)
	}

	q = q.
		GroupBy("c.id", "c.title").
		OrderBy(courseOrderColumns(filter.OrderBy)...).
		Limit(uint64(models.CoursesPageSize)).
		Offset(uint64(filter.Offset()))

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountCoursesQuery counts every course matching the filter's search,
// ignoring pagination.
func buildCountCoursesQuery(ctx context.Context, filter models.CourseFilter) (string, []any, error) {
	q := psql.Select("COUNT(*)").From("courses c")

	if pred := courseSearchPredicate(filter.Search); pred != nil {
		q = q.Where(pred)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetCourseByIDQuery(ctx context.Context, id string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "title", "description").
		From(models.Course{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertCourseQuery(ctx context.Context, course models.NewCourse) (string, []any, error) {
	query, args, err := psql.
		Insert(models.Course{}.TableName()).
		Columns("id", "title", "description").
		Values(course.ID, course.Title, course.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	query, args, err := psql.
		Select("id", "name", "email", "password_hash", "role").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(models.User{}.TableName()).
		Columns("id", "name", "email", "password_hash", "role").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Role.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertEnrollmentQuery(ctx context.Context, enrollment models.Enrollment) (string, []any, error) {
	query, args, err := psql.
		Insert(models.Enrollment{}.TableName()).
		Columns("id", "user_id", "course_id").
		Values(enrollment.ID, enrollment.UserID, enrollment.CourseID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
