// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/metrics"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var course models.NewCourse
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	id, err := h.services.CourseService.CreateCourse(ctx, course)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.CoursesCreatedTotal.Inc()
	log.Debug().Str("course_id", id).Msg("course created")

	utils.WriteJSON(w, models.CreateCourseResponse{CourseID: id}, http.StatusCreated)
}

// listCourses handles GET /courses?search=&orderBy=&page=. Missing orderBy
// and page fall back to "id" and 1; the remaining checks happen in the
// course service.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	filter, err := courseFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.CourseService.ListCourses(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListCoursesResponse{Courses: page.Courses, Total: page.Total}, http.StatusOK)
}

func courseFilterFromQuery(r *http.Request) (models.CourseFilter, error) {
	query := r.URL.Query()

	filter := models.CourseFilter{
		Search:  query.Get("search"),
		OrderBy: models.CourseOrder(query.Get("orderBy")),
		Page:    1,
	}
	if filter.OrderBy == "" {
		filter.OrderBy = models.CourseOrderByID
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.CourseFilter{}, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
		}
		filter.Page = page
	}

	return filter, nil
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.services.CourseService.GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GetCourseResponse{Course: course}, http.StatusOK)
}
