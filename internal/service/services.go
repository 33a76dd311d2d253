// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/config"
	"github.com/MKhiriev/course-keeper/internal/crypto"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/internal/validators"
	"github.com/MKhiriev/course-keeper/models"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	AppInfoService AppInfoService
}

// NewServices wires every service of the HTTP server over storages. Auth and
// course services are wrapped by their validation decorators.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := NewPasswordHasher(cfg.App)
	if err != nil {
		return nil, err
	}

	authService, err := NewAuthService(storages.UserRepository, hasher, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(buildInfo, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		CourseService:  NewCourseValidationService(validator).Wrap(NewCourseService(storages.CourseRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}

// NewPasswordHasher builds the argon2id hasher configured by cfg.
func NewPasswordHasher(cfg config.App) (crypto.PasswordHasher, error) {
	hasher, err := crypto.NewArgon2Hasher(crypto.Argon2Params{
		Time:    cfg.PasswordHashTime,
		Memory:  cfg.PasswordHashMemory,
		Threads: cfg.PasswordHashThreads,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}
	return hasher, nil
}
