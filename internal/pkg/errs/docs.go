// Package errs provides standardized error types for the marketplace order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - UnauthorizedError: For when a request carries no known actor
//   - ForbiddenError: For when an actor is not entitled to an effect, including
//     business rule rejections
//   - ConflictError: For when a conditional write lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transport adapters classify errors with errors.Is against the sentinels.
package errs
