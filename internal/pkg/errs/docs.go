// Package errs provides standardized error types for the tracking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types that map onto the failure classes
// callers must tell apart:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//     failures, rejected before any state change (see IsValidation)
//   - ConflictError: an illegal state transition, including a repeated dispatch or
//     complete; the record is unchanged
//   - ObjectNotFoundError: unknown identifier
//   - UnavailableError: a backing store could not be reached (see IsRetryable)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The core never retries internally; every error travels back to the caller,
// which decides on retry using the classification helpers.
package errs
