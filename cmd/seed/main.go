// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command seed fills an empty course-keeper database with demo users,
// courses and enrollments. Every seeded user has the password "123456".
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/course-keeper/internal/config"
	"github.com/MKhiriev/course-keeper/internal/logger"
	"github.com/MKhiriev/course-keeper/internal/service"
	"github.com/MKhiriev/course-keeper/internal/store"
)

func main() {
	log := logger.NewLogger("course-keeper-seed")
	if err := run(os.Args[1:], log); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

func run(args []string, log *logger.Logger) error {
	cfg, err := config.GetSeederConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing database")
		}
	}()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	hasher, err := service.NewPasswordHasher(cfg.App)
	if err != nil {
		return fmt.Errorf("error creating password hasher: %w", err)
	}

	seeder := service.NewSeedService(store.NewStorages(db, log), hasher, log)
	if _, err = seeder.Seed(ctx, demoData()); err != nil {
		return fmt.Errorf("error seeding database: %w", err)
	}
	return nil
}
