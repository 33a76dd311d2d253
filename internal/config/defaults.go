// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress     = ":3333"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	defaultTokenIssuer   = "course-keeper"
	defaultTokenDuration = time.Hour

	// argon2id parameters recommended by OWASP for interactive logins
	defaultPasswordHashTime    = 3
	defaultPasswordHashMemory  = 64 * 1024 // KiB
	defaultPasswordHashThreads = 4

	defaultLogLevel = "debug"

	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultConnMaxLifetime = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         defaultTokenIssuer,
			TokenDuration:       defaultTokenDuration,
			PasswordHashTime:    defaultPasswordHashTime,
			PasswordHashMemory:  defaultPasswordHashMemory,
			PasswordHashThreads: defaultPasswordHashThreads,
			LogLevel:            defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
