// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/metrics"
	"github.com/MKhiriev/course-keeper/internal/service"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/internal/validators"
	"github.com/MKhiriev/course-keeper/models"
)

// login handles POST /sessions: it checks email and password and answers
// with a signed token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInvalid).Inc()
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginFailed).Inc()
		writeError(w, r, err)
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSucceeded).Inc()
	log.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return metrics.LoginRejected
	case errors.Is(err, validators.ErrValidation):
		return metrics.LoginInvalid
	}
	return metrics.LoginFailed
}
