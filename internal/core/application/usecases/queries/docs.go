// Package queries contains read-only operations over orders and their audit
// trail. Implements the Query side of the CQRS architecture: handlers either
// consult the domain validator or read the database directly, and never
// modify state.
package queries
