package ports

import (
	"context"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// audit trail. Entries are never updated or deleted.
type HistoryRepository interface {
	// Append persists one audit entry.
	Append(ctx context.Context, entry *audit.Entry) error

	// GetByOrder retrieves the full history of one order, newest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)

	// GetAll retrieves every audit entry, oldest first. Used by the workflow
	// statistics query, which aggregates in memory.
	GetAll(ctx context.Context) ([]*audit.Entry, error)
}
