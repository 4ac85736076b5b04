package commands

import (
	"context"

	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders always start in the created status; any automatic follow-up
// edge is picked up by the auto-advance sweep.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orderRepository ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.PatientName(), cmd.Procedure())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
