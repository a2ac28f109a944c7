package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
)

// sanitize keeps user supplied values on a single line so they are safe to log.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}
