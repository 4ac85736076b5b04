package commands

import (
	"errors"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/guard"
)

var ErrUpdateOrderReadinessCommandIsNotConstructed = errors.New(
	"UpdateOrderReadinessCommand must be created via NewUpdateOrderReadinessCommand constructor",
)

// UpdateOrderReadinessCommand represents a request to replace the readiness
// flags precondition predicates evaluate for an order.
type UpdateOrderReadinessCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	readiness workflow.Readiness

	guard guard.ConstructorGuard
}

// NewUpdateOrderReadinessCommand creates a readiness update command.
func NewUpdateOrderReadinessCommand(
	orderID kernel.UUID,
	readiness workflow.Readiness,
) (UpdateOrderReadinessCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderReadinessCommand{}, err
	}

	return UpdateOrderReadinessCommand{
		orderID:   orderID,
		readiness: readiness,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderReadinessCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderReadinessCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderReadinessCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Readiness returns the new readiness flags.
func (c UpdateOrderReadinessCommand) Readiness() workflow.Readiness {
	return c.readiness
}
