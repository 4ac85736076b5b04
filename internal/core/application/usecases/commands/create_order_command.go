package commands

import (
	"errors"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPatientNameIsRequired = errors.New("patient name is required")
	ErrProcedureIsRequired   = errors.New("procedure is required")
)

// CreateOrderCommand represents a request to register a new equipment order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	patientName string
	procedure   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and both patient name and procedure
// are present.
func NewCreateOrderCommand(orderID kernel.UUID, patientName, procedure string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setPatientName(patientName),
		orderCommand.setProcedure(procedure),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PatientName returns the patient the procedure is scheduled for.
func (c CreateOrderCommand) PatientName() string {
	return c.patientName
}

// Procedure returns the procedure description.
func (c CreateOrderCommand) Procedure() string {
	return c.procedure
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPatientName(patientName string) error {
	if patientName == "" {
		return ErrPatientNameIsRequired
	}

	c.patientName = patientName
	return nil
}

func (c *CreateOrderCommand) setProcedure(procedure string) error {
	if procedure == "" {
		return ErrProcedureIsRequired
	}

	c.procedure = procedure
	return nil
}
