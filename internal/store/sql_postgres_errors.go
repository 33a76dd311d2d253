// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err did not
// come from the PostgreSQL server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyPgError maps a PostgreSQL error to a store sentinel. It returns
// nil when the code has no domain meaning and the caller should wrap err as
// an unexpected failure.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - Class 08 and 57P03: connection lost or refused → [ErrDatabaseUnavailable]
//   - 23503 foreign_key_violation → [ErrReferenceNotFound]
//   - 22P02 invalid_text_representation (malformed uuid) → notFound
//   - 23505 unique_violation → unique
func classifyPgError(err error, notFound, unique error) error {
	switch code := postgresError(err); code {
	case "":
		return nil

	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.CannotConnectNow:
		return ErrDatabaseUnavailable

	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound

	case pgerrcode.InvalidTextRepresentation:
		return notFound

	case pgerrcode.UniqueViolation:
		return unique
	}

	return nil
}
