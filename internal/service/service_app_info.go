// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/store"
	"github.com/MKhiriev/course-keeper/models"
)

type appInfoService struct {
	appVersion string
	health     store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, health store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: buildInfo.BuildVersion(),
		health:     health,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ready(ctx context.Context) error {
	if err := s.health.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("readiness check failed")
		return fmt.Errorf("database is not ready: %w", err)
	}
	return nil
}
