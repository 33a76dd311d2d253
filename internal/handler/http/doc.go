// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of course-keeper.
//
// It wires the chi router, the request handlers for sessions and courses,
// and the middleware chain that runs before them: trace ids, access logging,
// Prometheus metrics, response compression, token authentication and role
// checks. Errors coming from the service layer are mapped to HTTP statuses
// in errors_mapper.go.
package http
