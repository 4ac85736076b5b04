package queries

import (
	"errors"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/guard"
)

var ErrGetValidTransitionsQueryIsNotConstructed = errors.New(
	"GetValidTransitionsQuery must be created via NewGetValidTransitionsQuery constructor",
)

// GetValidTransitionsQuery asks which transitions a role may apply to an
// order from its current status.
type GetValidTransitionsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	role    workflow.Role

	guard guard.ConstructorGuard
}

// NewGetValidTransitionsQuery creates a valid-transitions query.
func NewGetValidTransitionsQuery(orderID kernel.UUID, role workflow.Role) (GetValidTransitionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetValidTransitionsQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return GetValidTransitionsQuery{}, err
	}

	return GetValidTransitionsQuery{
		orderID: orderID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetValidTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetValidTransitionsQueryIsNotConstructed)
}

// OrderID returns the order to inspect.
func (q GetValidTransitionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Role returns the role transitions are listed for.
func (q GetValidTransitionsQuery) Role() workflow.Role {
	return q.role
}

// GetValidTransitionsQueryResponse describes one edge the role may apply.
// Available reports whether the transition would pass its hard preconditions
// right now; RequiredActions lists what is still missing when it would not.
type GetValidTransitionsQueryResponse struct {
	ToStatus                 workflow.Status
	Description              string
	Available                bool
	RequiredActions          []string
	Warnings                 []string
	Automatic                bool
	EstimatedDurationMinutes int
}
