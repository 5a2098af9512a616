package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error kind. Callers classify failures with
// errors.Is against these values.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsRequired       = errors.New("value is required")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrBusinessRuleViolation = errors.New("business rule violation")
	ErrAssignmentFailed      = errors.New("assignment failed")
	ErrDataIntegrity         = errors.New("data integrity violation")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced record does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a store error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError indicates that a required value is missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value fails field-level validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause
// that describes why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// BusinessRuleViolationError indicates that a domain invariant blocks the
// requested operation. The message names the violated rule; no state is
// mutated when this error is returned.
type BusinessRuleViolationError struct {
	Message string
	Cause   error
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError with a
// human-readable description of the violated rule.
func NewBusinessRuleViolationError(message string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: message}
}

// NewBusinessRuleViolationErrorWithCause creates a BusinessRuleViolationError
// wrapping a cause.
func NewBusinessRuleViolationErrorWithCause(message string, cause error) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: message, Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRuleViolation, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrBusinessRuleViolation, e.Message))
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}

// AssignmentFailedError indicates that a validated assignment could not be
// committed, for example because of a concurrent-write conflict or a store
// failure during the assign step.
type AssignmentFailedError struct {
	Message string
	Cause   error
}

// NewAssignmentFailedError creates an AssignmentFailedError.
func NewAssignmentFailedError(message string) *AssignmentFailedError {
	return &AssignmentFailedError{Message: message}
}

// NewAssignmentFailedErrorWithCause creates an AssignmentFailedError wrapping
// the store error that aborted the commit.
func NewAssignmentFailedErrorWithCause(message string, cause error) *AssignmentFailedError {
	return &AssignmentFailedError{Message: message, Cause: cause}
}

func (e *AssignmentFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAssignmentFailed, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAssignmentFailed, e.Message))
}

func (e *AssignmentFailedError) Unwrap() error {
	return ErrAssignmentFailed
}

// DataIntegrityError indicates that a committed write failed for reasons
// other than business rules.
type DataIntegrityError struct {
	Operation string
	Cause     error
}

// NewDataIntegrityError creates a DataIntegrityError for the named operation.
func NewDataIntegrityError(operation string, cause error) *DataIntegrityError {
	return &DataIntegrityError{Operation: operation, Cause: cause}
}

func (e *DataIntegrityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDataIntegrity, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDataIntegrity, e.Operation))
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
