// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-keeper/internal/metrics"
	"github.com/MKhiriev/course-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withMetrics, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service routes
	router.Get("/", http.RedirectHandler("/health", http.StatusTemporaryRedirect).ServeHTTP)
	router.Get("/health", h.health)
	router.Get("/health/ready", h.ready)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// routes without authorization
	router.Post("/sessions", h.login)

	// instructor-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate, h.requireRole(models.RoleInstructor))
		r.Post("/courses", h.createCourse)
		r.Get("/courses", h.listCourses)
	})

	// routes for any authenticated user
	router.With(h.authenticate).Get("/courses/{id}", h.getCourse)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
