// Package errs provides standardized error types for the logistics workflow
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers both generic validation failures and the workflow error
// taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError: input validation
//   - ObjectNotFoundError: missing persisted objects (orders, history entries)
//   - TransitionNotFoundError: the requested edge is not declared in the graph
//   - NotAuthorizedError: the acting role may not apply the transition
//   - PreconditionFailedError: a hard guard is unmet (carries RequiredActions)
//   - ConcurrencyConflictError: the status changed underneath; retryable
//   - RollbackPolicyError: rollback target or role violates policy
//   - AuditWriteError: history append failed after commit; queued, non-fatal
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConcurrencyConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause applies
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
package errs
