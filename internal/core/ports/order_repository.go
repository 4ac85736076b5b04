package ports

import (
	"context"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus commits a status change with a conditional update: the row
	// is written only while it still holds the expected status. When another
	// writer got there first no row matches and a concurrency conflict error
	// is returned, leaving the stored order untouched.
	UpdateStatus(ctx context.Context, id kernel.UUID, next, expected workflow.Status) error

	// UpdateReadiness persists the order's readiness flags.
	UpdateReadiness(ctx context.Context, aggregate *order.Order) error

	// GetAllInStatus retrieves every order currently in the given status.
	// Used by the auto-advance sweep to find orders parked on automatic edges.
	GetAllInStatus(ctx context.Context, status workflow.Status) ([]*order.Order, error)
}
