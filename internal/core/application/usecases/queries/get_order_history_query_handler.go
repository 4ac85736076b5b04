package queries

import (
	"context"
	"time"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's audit trail from the database,
// newest change first.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. An order without history yields an empty slice,
// not an error; existence of the order is the caller's concern.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			changed_by,
			role,
			changed_at,
			notes,
			is_rollback
		FROM order_history
		WHERE order_id = ?
		ORDER BY changed_at DESC, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var fromStatus, toStatus, changedBy, role, notes string
		var changedAt time.Time
		var isRollback bool

		err = rows.Scan(&id, &fromStatus, &toStatus, &changedBy, &role, &changedAt, &notes, &isRollback)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, GetOrderHistoryQueryResponse{
			ID:         entryID,
			FromStatus: workflow.Status(fromStatus),
			ToStatus:   workflow.Status(toStatus),
			ChangedBy:  changedBy,
			Role:       workflow.Role(role),
			ChangedAt:  changedAt,
			Notes:      notes,
			IsRollback: isRollback,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
