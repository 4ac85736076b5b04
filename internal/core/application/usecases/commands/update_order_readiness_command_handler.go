package commands

import (
	"context"

	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/ports"
)

// UpdateOrderReadinessCommandHandler persists new readiness flags for an
// order. Readiness changes never move status by themselves; parked automatic
// edges are picked up by the auto-advance sweep.
type UpdateOrderReadinessCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderReadinessCommandHandler creates a readiness update handler.
func NewUpdateOrderReadinessCommandHandler(orderRepository ports.OrderRepository) UpdateOrderReadinessCommandHandler {
	return UpdateOrderReadinessCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the readiness update command.
func (h *UpdateOrderReadinessCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderReadinessCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	aggregate.UpdateReadiness(cmd.Readiness())

	if err = h.orderRepository.UpdateReadiness(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
