// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// The kinds map onto the failure classes the engine reports to callers:
// ObjectNotFoundError for missing records, ValueIsRequiredError and
// ValueIsInvalidError for malformed input, BusinessRuleViolationError for
// domain invariants blocking an operation, AssignmentFailedError for a
// validated assignment that could not be committed, and DataIntegrityError
// for store failures outside business rules.
package errs
