// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads before
// they reach business logic or storage.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the error returned for rejected input. It matches
//     [ErrValidation] with errors.Is and carries one message per failed field.
//
// Rules are declared on the model structs with `validate` struct tags and
// checked by go-playground/validator. Field names in messages are taken from
// the `json` tags, so they match what the client sent.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
