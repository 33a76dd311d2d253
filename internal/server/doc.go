// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of course-keeper.
//
// It owns startup, signal handling (SIGTERM, SIGINT, SIGQUIT) and graceful
// shutdown bounded by the configured shutdown timeout.
package server
