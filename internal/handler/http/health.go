// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-keeper/internal/app"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: app.MsgStatusOK}, http.StatusOK)
}

// ready reports whether the database answers; 503 otherwise.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("service not ready")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgDatabaseUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: app.MsgStatusOK}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
