package commands

import (
	"errors"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/guard"
)

var (
	ErrRollbackOrderCommandIsNotConstructed = errors.New(
		"RollbackOrderCommand must be created via NewRollbackOrderCommand constructor",
	)
	ErrRollbackReasonIsRequired = errors.New("rollback reason is required")
)

// RollbackOrderCommand represents an administrative request to move an order
// back to an earlier status outside the declared transition graph.
type RollbackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus workflow.Status
	actorID      string
	role         workflow.Role
	reason       string
	metadata     audit.Metadata

	guard guard.ConstructorGuard
}

// NewRollbackOrderCommand creates a rollback command. The reason is
// mandatory; whether the actor's role may roll back and whether the target
// is an earlier main-sequence status is decided by the handler.
func NewRollbackOrderCommand(
	orderID kernel.UUID,
	targetStatus workflow.Status,
	actorID string,
	role workflow.Role,
	reason string,
	metadata audit.Metadata,
) (RollbackOrderCommand, error) {
	cmd := RollbackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
		cmd.setActor(actorID, role),
		cmd.setReason(reason),
	); err != nil {
		return RollbackOrderCommand{}, err
	}

	cmd.metadata = metadata
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RollbackOrderCommand) Validate() error {
	return c.guard.Validate(ErrRollbackOrderCommandIsNotConstructed)
}

// OrderID returns the order to roll back.
func (c RollbackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the earlier status to return to.
func (c RollbackOrderCommand) TargetStatus() workflow.Status {
	return c.targetStatus
}

// ActorID returns the acting actor's identifier.
func (c RollbackOrderCommand) ActorID() string {
	return c.actorID
}

// Role returns the role the actor acts in.
func (c RollbackOrderCommand) Role() workflow.Role {
	return c.role
}

// Reason returns the mandatory rollback justification.
func (c RollbackOrderCommand) Reason() string {
	return c.reason
}

// Metadata returns the optional request context for the audit entry.
func (c RollbackOrderCommand) Metadata() audit.Metadata {
	return c.metadata
}

func (c *RollbackOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RollbackOrderCommand) setTargetStatus(status workflow.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}

func (c *RollbackOrderCommand) setActor(actorID string, role workflow.Role) error {
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

func (c *RollbackOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRollbackReasonIsRequired
	}

	c.reason = reason
	return nil
}
