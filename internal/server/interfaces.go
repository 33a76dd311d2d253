// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until a stop signal arrives and the server has been shut
// down. Shutdown stops the server and frees associated resources.
type Server interface {
	RunServer()

	Shutdown()
}
