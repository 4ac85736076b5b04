// Package audit provides the immutable status-history entry recorded for
// every transition and rollback applied to an order.
//
// Entries are append-only: once written they are never mutated or deleted,
// and the history of an order is totally ordered by the change timestamp.
// Rollbacks are a tagged variant of the same record rather than an ordinary
// graph edge, so reporting and policy checks can treat them differently from
// forward progress.
package audit
