package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to one of these so callers
// can classify failures with errors.Is.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrVersionIsInvalid      = errors.New("version is invalid")
	ErrInvalidState          = errors.New("invalid state")
	ErrForbidden             = errors.New("forbidden")
	ErrRevisionLimitExceeded = errors.New("revision limit exceeded")
	ErrConflictingPayment    = errors.New("conflicting payment")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an object identified by ID could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that triggered it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that a conditional update observed a stale
// aggregate version. The caller should roll back and retry on a fresh read.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping a cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidStateError indicates that an operation is not allowed while the
// target entity is in its current status.
type InvalidStateError struct {
	Operation string
	Status    string
}

// NewInvalidStateError creates an InvalidStateError for the given operation
// and current status.
func NewInvalidStateError(operation, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed while %s", ErrInvalidState, e.Operation, e.Status)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ForbiddenError indicates that the acting user lacks the role or ownership
// the operation requires.
type ForbiddenError struct {
	ActorID string
	Reason  string
}

// NewForbiddenError creates a ForbiddenError naming the actor and the check
// that failed.
func NewForbiddenError(actorID, reason string) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s (actor: %s)", ErrForbidden, e.Reason, e.ActorID)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// RevisionLimitExceededError indicates that a revision request would exceed
// the order's plan-specific revision allowance.
type RevisionLimitExceededError struct {
	Requested int
	Max       int
}

// NewRevisionLimitExceededError creates a RevisionLimitExceededError carrying
// the requested revision number and the allowed maximum.
func NewRevisionLimitExceededError(requested, maxRevisions int) *RevisionLimitExceededError {
	return &RevisionLimitExceededError{Requested: requested, Max: maxRevisions}
}

func (e *RevisionLimitExceededError) Error() string {
	return fmt.Sprintf("%s: revision %d of %d", ErrRevisionLimitExceeded, e.Requested, e.Max)
}

func (e *RevisionLimitExceededError) Unwrap() error {
	return ErrRevisionLimitExceeded
}

// ConflictingPaymentError indicates that a payment of the same type is already
// open for the order; the pending one must settle before another is initiated.
type ConflictingPaymentError struct {
	OrderID     string
	PaymentType string
}

// NewConflictingPaymentError creates a ConflictingPaymentError for the order
// and payment type pair.
func NewConflictingPaymentError(orderID, paymentType string) *ConflictingPaymentError {
	return &ConflictingPaymentError{OrderID: orderID, PaymentType: paymentType}
}

func (e *ConflictingPaymentError) Error() string {
	return fmt.Sprintf("%s: a %s payment is already open for order %s",
		ErrConflictingPayment, e.PaymentType, e.OrderID)
}

func (e *ConflictingPaymentError) Unwrap() error {
	return ErrConflictingPayment
}
