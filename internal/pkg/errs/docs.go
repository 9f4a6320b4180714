// Package errs provides standardized error types for the marketplace
// fulfillment core. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the fulfillment error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input (empty cart, non-positive quantity or price)
//   - ObjectNotFoundError: unknown order, product, or tracking record
//   - ForbiddenError: role not authorized for the requested action
//   - InvalidTransitionError: target status unreachable from current status
//   - PreconditionFailedError: pickup stage gate not satisfied
//   - ConflictError: concurrent mutation lost the race, or partner already
//     assigned (the one retryable case)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Validation and authorization failures are always reported to the caller,
// never swallowed. Only ConflictError should ever be retried, and retries
// belong to the caller, not the core.
package errs
