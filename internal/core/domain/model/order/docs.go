// Package order provides the Order aggregate root for the medical-equipment
// logistics system.
//
// The aggregate owns the order's identity, its current lifecycle status and
// the readiness flags that precondition predicates evaluate. It deliberately
// does NOT enforce the transition graph itself: which status changes are
// legal, for whom, and under which guards is decided by the workflow
// validator and applied through the lifecycle command handlers. The aggregate
// only guarantees that its status is always a declared member of the
// enumeration and that instances are created through a constructor.
//
// Domain fields owned by external collaborators (patient record, procedure
// details, pricing) are carried as plain attributes; the core only reads and
// writes status and readiness.
package order
