// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side password hashing used to store and
// verify user credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing encoded
// hashes and checks candidates against them.
//
// Hash and Verify are safe for concurrent use.
type PasswordHasher interface {
	// Hash derives a new encoded hash from password using a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. The cost
	// parameters are read from encodedHash itself, so hashes produced with
	// older settings keep verifying. A malformed hash is an error, not false.
	Verify(password, encodedHash string) (bool, error)
}
