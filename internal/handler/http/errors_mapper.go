// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-keeper/internal/app"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/service"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/internal/validators"
	"github.com/MKhiriev/course-keeper/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidPage:           http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrCourseNotFound:      http.StatusNotFound,
	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the text put into the "error" field of a 4xx body.
func errorMessage(err error) string {
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, store.ErrCourseNotFound):
		return app.MsgCourseNotFound
	case errors.Is(err, ErrInvalidJSON):
		return ErrInvalidJSON.Error()
	case errors.Is(err, ErrInvalidPage):
		return ErrInvalidPage.Error()
	}
	return err.Error()
}

// writeError answers the request according to err:
//   - bad credentials get {"message": ...};
//   - 401 and 403 get an empty body;
//   - other client errors get {"error": ...};
//   - server errors are logged and get a generic {"error": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Info().Msg("invalid credentials")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidCredentials}, status)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		log.Info().Err(err).Int("status", status).Msg("access denied")
		utils.WriteStatus(w, status)
	case status == http.StatusServiceUnavailable:
		log.Err(err).Msg("database unavailable")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgDatabaseUnavailable}, status)
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, status)
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: errorMessage(err)}, status)
	}
}
