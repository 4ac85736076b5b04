package commands

import (
	"errors"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrActorIDIsRequired = errors.New("actor id is required")
)

// TransitionOrderCommand represents a request to move an order to a target
// status on behalf of an actor acting in a given role.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus workflow.Status
	actorID      string
	role         workflow.Role
	notes        string
	metadata     audit.Metadata

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// The target status and role must be declared members of their enumerations;
// whether the edge exists and the role may use it is decided by the handler
// against the workflow graph.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	targetStatus workflow.Status,
	actorID string,
	role workflow.Role,
	notes string,
	metadata audit.Metadata,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
		cmd.setActor(actorID, role),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	cmd.notes = notes
	cmd.metadata = metadata
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested destination status.
func (c TransitionOrderCommand) TargetStatus() workflow.Status {
	return c.targetStatus
}

// ActorID returns the acting actor's identifier.
func (c TransitionOrderCommand) ActorID() string {
	return c.actorID
}

// Role returns the role the actor acts in.
func (c TransitionOrderCommand) Role() workflow.Role {
	return c.role
}

// Notes returns the optional free-form notes for the audit entry.
func (c TransitionOrderCommand) Notes() string {
	return c.notes
}

// Metadata returns the optional request context for the audit entry.
func (c TransitionOrderCommand) Metadata() audit.Metadata {
	return c.metadata
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTargetStatus(status workflow.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}

func (c *TransitionOrderCommand) setActor(actorID string, role workflow.Role) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.role = role
	return nil
}
