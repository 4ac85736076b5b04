package queries

import (
	"context"

	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/core/ports"
)

// GetValidTransitionsQueryHandler lists the edges a role may apply to an
// order, with their current precondition standing. Evaluation is read-only;
// asking never changes the order.
type GetValidTransitionsQueryHandler struct {
	orderRepository ports.OrderRepository
	validator       *workflow.Validator
}

// NewGetValidTransitionsQueryHandler creates a valid-transitions handler.
func NewGetValidTransitionsQueryHandler(
	orderRepository ports.OrderRepository,
	validator *workflow.Validator,
) GetValidTransitionsQueryHandler {
	return GetValidTransitionsQueryHandler{
		orderRepository: orderRepository,
		validator:       validator,
	}
}

// Handle executes the query against the order's current status.
func (h GetValidTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetValidTransitionsQuery,
) ([]GetValidTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	edges := h.validator.Graph().ValidTransitions(aggregate.Status(), query.Role())
	responses := make([]GetValidTransitionsQueryResponse, 0, len(edges))

	for _, edge := range edges {
		result := h.validator.Validate(aggregate.Status(), edge.To, query.Role(), aggregate.Readiness())

		responses = append(responses, GetValidTransitionsQueryResponse{
			ToStatus:                 edge.To,
			Description:              edge.Description,
			Available:                result.IsValid,
			RequiredActions:          result.RequiredActions,
			Warnings:                 result.Warnings,
			Automatic:                edge.Automatic,
			EstimatedDurationMinutes: edge.EstimatedDurationMinutes,
		})
	}

	return responses, nil
}
