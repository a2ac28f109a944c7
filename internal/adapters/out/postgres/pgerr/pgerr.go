// Package pgerr classifies PostgreSQL driver errors for the repositories.
package pgerr

import (
	"errors"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsRetryable reports whether err is a serialization failure or a deadlock.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// Translate turns concurrency failures on param/id into errs.ConflictError and
// returns any other error unchanged.
func Translate(err error, param, id string) error {
	if err == nil {
		return nil
	}
	if IsRetryable(err) {
		return errs.NewConflictError(param, id)
	}
	return err
}
