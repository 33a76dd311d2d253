// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/utils"
	"github.com/MKhiriev/course-keeper/models"
)

// authenticate is an HTTP middleware that enforces JWT-based authentication.
//
// The "Authorization" header may carry the token alone or behind a "Bearer "
// prefix. A missing, malformed, expired or otherwise invalid token is
// answered with 401 and an empty body. On success the token's identity is
// stored in the request context under [utils.IdentityCtxKey].
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, ok := utils.ParseAuthorizationHeader(r.Header.Get("Authorization"))
		if !ok {
			log.Info().Err(ErrEmptyAuthorizationHeader).Msg("request without token")
			utils.WriteStatus(w, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity)))
	})
}

// requireRole only lets through requests whose identity has the required
// role; others get 403 with an empty body. It must run after authenticate.
func (h *Handler) requireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				log.Error().Err(ErrNoIdentityInContext).Str("path", r.URL.Path).Send()
				utils.WriteStatus(w, http.StatusInternalServerError)
				return
			}

			if !roleAllowed(identity, required) {
				log.Info().
					Str("subject", identity.Subject).
					Str("role", identity.Role.String()).
					Str("required_role", required.String()).
					Msg("role not allowed")
				utils.WriteStatus(w, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func roleAllowed(identity models.Identity, required models.Role) bool {
	return identity.Role == required
}
