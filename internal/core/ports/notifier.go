package ports

import (
	"context"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/order"
)

// Notifier publishes a status-change event to interested parties after the
// change has been committed. Delivery is best effort: a publish failure never
// affects the committed transition.
type Notifier interface {
	NotifyStatusChanged(ctx context.Context, aggregate *order.Order, entry *audit.Entry) error
}
