// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/course-keeper/internal/config"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/mock"
	"github.com/MKhiriev/course-keeper/internal/service"
	"github.com/MKhiriev/course-keeper/internal/validators"
	"github.com/MKhiriev/course-keeper/models"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

const (
	instructorToken = "instructor-token"
	studentToken    = "student-token"
	courseID        = "0199f3a2-7c1e-7b8a-9d2e-3f4a5b6c7d8e"
)

var tokenIdentities = map[string]models.Identity{
	instructorToken: {Subject: "u-instructor", Role: models.RoleInstructor},
	studentToken:    {Subject: "u-student", Role: models.RoleStudent},
}

type testHandler struct {
	*Handler

	auth    *mock.MockAuthService
	courses *mock.MockCourseService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler over mocked services. The course service
// mock sits behind the real validation wrapper, so requests with invalid
// input must never reach it. ParseToken accepts the tokens in
// tokenIdentities and rejects everything else.
func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		auth:    mock.NewMockAuthService(ctrl),
		courses: mock.NewMockCourseService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	th.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token string) (models.Token, error) {
			identity, ok := tokenIdentities[token]
			if !ok {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: token, Identity: identity}, nil
		}).AnyTimes()

	validator := validators.NewStructValidator()
	services := &service.Services{
		AuthService:    service.NewAuthValidationService(validator).Wrap(th.auth),
		CourseService:  service.NewCourseValidationService(validator).Wrap(th.courses),
		AppInfoService: th.appInfo,
	}

	th.Handler = NewHandler(services, config.Server{}, logger.Nop())
	return th
}

// do sends a request through the full router.
func (th *testHandler) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)
	return rec
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
