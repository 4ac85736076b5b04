// Package workflow defines the order lifecycle state machine for the
// medical-equipment logistics system: the canonical status enumeration, the
// role enumeration, the declarative transition graph, and the transition
// validator with its pluggable precondition registry.
//
// The package includes:
//   - Status: canonical lifecycle states with a fixed index ordering used for rollback policy
//   - Role: the actors allowed to drive transitions (commercial, operations, doctor, warehouse, technician, finance, administrator, system)
//   - Transition / Graph: the immutable table of legal edges, indexed by source state
//   - Validator: legality checks combining edge lookup, role authorization and precondition guards
//   - Config: process-wide workflow policy (auto-advance, approval, notification, logging)
//
// The graph and validator are built once at startup and shared read-only
// across all concurrent callers; nothing in this package mutates state after
// construction.
package workflow
