// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, a guarded
// Validate method, and a handler that owns the persistence choreography.
//
// The transition handler is the single writer of order status: it validates
// the requested edge against the workflow graph, commits the change with a
// conditional update keyed on the expected current status, appends the audit
// entry, and walks automatic follow-up edges. The rollback handler bypasses
// the graph but never the audit trail.
package commands
