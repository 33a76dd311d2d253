// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller derived from a verified token.
// It lives only in the context of the request that produced it.
type Identity struct {
	// Subject is the user ID taken from the "sub" claim.
	Subject string

	// Role is taken from the "role" claim.
	Role Role
}
