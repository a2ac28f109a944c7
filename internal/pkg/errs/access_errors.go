package errs

import "fmt"

// UnauthorizedError means the request carries no known actor.
type UnauthorizedError struct {
	ActorID any
}

func NewUnauthorizedError(actorID any) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID}
}

func (e *UnauthorizedError) Error() string {
	if e.ActorID == nil {
		return ErrUnauthorized.Error()
	}
	return fmt.Sprintf("%s: unknown actor %s", ErrUnauthorized, sanitize(e.ActorID))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ForbiddenError means the actor is known but not entitled to the requested effect.
// Business rule rejections (shop closed, out of stock, too far) use it as well.
type ForbiddenError struct {
	Reason string
	Cause  error
}

func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason), e.Cause)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError means a concurrent writer changed the object first.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s was modified concurrently", ErrConflict, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
