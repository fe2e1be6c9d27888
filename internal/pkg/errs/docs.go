// Package errs provides the standardized error types used across the
// printworks application. It implements a consistent pattern for error
// creation, formatting, and unwrapping.
//
// The package covers two groups of failures.
//
// Generic value/object errors shared by every layer:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - VersionIsInvalidError: an optimistic concurrency check failed
//
// Domain workflow errors raised by the order lifecycle core:
//   - InvalidStateError: an operation is illegal for the current status
//   - ForbiddenError: a role or ownership check failed
//   - RevisionLimitExceededError: the plan's revision allowance is spent
//   - ConflictingPaymentError: a payment of the same type is already open
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Because every error unwraps to its sentinel, callers classify failures with
// errors.Is and branch on kind rather than on message text.
package errs
