package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap target of every typed error in this
// package. Callers classify failures with errors.Is against these values.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrObjectNotFound      = errors.New("object not found")
	ErrTransitionNotFound  = errors.New("transition is not declared")
	ErrNotAuthorized       = errors.New("role is not authorized")
	ErrPreconditionFailed  = errors.New("precondition is not met")
	ErrConcurrencyConflict = errors.New("concurrent modification detected")
	ErrRollbackPolicy      = errors.New("rollback policy violated")
	ErrAuditWrite          = errors.New("audit write failed")
)

// sanitize flattens multi-line error detail into a single log-safe line.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

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

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

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

// ObjectNotFoundError indicates a persisted object could not be located.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

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

// TransitionNotFoundError indicates the requested (from, to) pair is not a
// declared edge of the workflow graph.
type TransitionNotFoundError struct {
	From string
	To   string
}

func NewTransitionNotFoundError(from, to string) *TransitionNotFoundError {
	return &TransitionNotFoundError{From: from, To: to}
}

func (e *TransitionNotFoundError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrTransitionNotFound, e.From, e.To))
}

func (e *TransitionNotFoundError) Unwrap() error {
	return ErrTransitionNotFound
}

// NotAuthorizedError indicates the acting role is not allowed to apply the
// requested transition.
type NotAuthorizedError struct {
	Role string
	From string
	To   string
}

func NewNotAuthorizedError(role, from, to string) *NotAuthorizedError {
	return &NotAuthorizedError{Role: role, From: from, To: to}
}

func (e *NotAuthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %s may not move order from %s to %s",
		ErrNotAuthorized, e.Role, e.From, e.To))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// PreconditionFailedError indicates one or more hard guards of the requested
// transition are unmet. RequiredActions lists human-readable steps the caller
// must complete before retrying; Warnings carries unmet advisory conditions.
type PreconditionFailedError struct {
	From            string
	To              string
	RequiredActions []string
	Warnings        []string
}

func NewPreconditionFailedError(from, to string, requiredActions, warnings []string) *PreconditionFailedError {
	return &PreconditionFailedError{From: from, To: to, RequiredActions: requiredActions, Warnings: warnings}
}

func (e *PreconditionFailedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s requires: %s",
		ErrPreconditionFailed, e.From, e.To, strings.Join(e.RequiredActions, "; ")))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ConcurrencyConflictError indicates the order status changed between load
// and commit. The operation performed no writes and is safe to retry.
type ConcurrencyConflictError struct {
	OrderID        string
	ExpectedStatus string
}

func NewConcurrencyConflictError(orderID, expectedStatus string) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{OrderID: orderID, ExpectedStatus: expectedStatus}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is no longer in status %s",
		ErrConcurrencyConflict, e.OrderID, e.ExpectedStatus))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// RollbackPolicyError indicates a rollback request that is not allowed:
// the target is not strictly earlier in the canonical ordering, the target
// is an absorbing state, or the acting role is not elevated.
type RollbackPolicyError struct {
	Current string
	Target  string
	Detail  string
}

func NewRollbackPolicyError(current, target, detail string) *RollbackPolicyError {
	return &RollbackPolicyError{Current: current, Target: target, Detail: detail}
}

func (e *RollbackPolicyError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s (%s)", ErrRollbackPolicy, e.Current, e.Target, e.Detail))
}

func (e *RollbackPolicyError) Unwrap() error {
	return ErrRollbackPolicy
}

// AuditWriteError indicates the history append failed after the status commit
// already succeeded. It is never surfaced as a failure of the transition
// itself; the entry is queued for retry instead.
type AuditWriteError struct {
	OrderID string
	Cause   error
}

func NewAuditWriteError(orderID string, cause error) *AuditWriteError {
	return &AuditWriteError{OrderID: orderID, Cause: cause}
}

func (e *AuditWriteError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s (cause: %s)", ErrAuditWrite, e.OrderID, e.Cause))
}

func (e *AuditWriteError) Unwrap() error {
	return ErrAuditWrite
}
