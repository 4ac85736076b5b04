package order

import (
	"errors"
	"time"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents an equipment-supported procedure progressing through the
// lifecycle. It is the aggregate root the lifecycle service loads, validates
// and commits.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Status is always a declared member of the workflow enumeration
//   - Status changes flow through the lifecycle service or rollback
//     controller, never through a direct field write
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	// patientName and procedure are owned by external collaborators; the
	// core carries them for display and notification payloads only.
	patientName string
	procedure   string

	status    workflow.Status
	readiness workflow.Readiness
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the initial created status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - patientName: patient the procedure is scheduled for
//   - procedure: short description of the procedure
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, patientName, procedure string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if patientName == "" {
		return nil, errs.NewValueIsRequiredError("patient name")
	}
	if procedure == "" {
		return nil, errs.NewValueIsRequiredError("procedure")
	}

	return &Order{
		id:            id,
		patientName:   patientName,
		procedure:     procedure,
		status:        workflow.StatusCreated,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored status must
// be a declared member of the enumeration; a row with an undeclared status is
// corrupt and is rejected rather than silently accepted.
func RestoreOrder(
	id kernel.UUID,
	patientName, procedure string,
	status workflow.Status,
	readiness workflow.Readiness,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		patientName:   patientName,
		procedure:     procedure,
		status:        status,
		readiness:     readiness,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PatientName returns the patient the procedure is scheduled for.
func (o *Order) PatientName() string {
	return o.patientName
}

// Procedure returns the procedure description.
func (o *Order) Procedure() string {
	return o.procedure
}

// Status returns the current lifecycle status.
func (o *Order) Status() workflow.Status {
	return o.status
}

// Readiness returns the snapshot of readiness flags that precondition
// predicates evaluate.
func (o *Order) Readiness() workflow.Readiness {
	return o.readiness
}

// UpdatedAt returns the time of the last status or readiness change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ApplyStatus records a status change on the in-memory aggregate after the
// store-level conditional update committed. Legality of the change is the
// lifecycle service's responsibility; this method only rejects undeclared
// status values.
func (o *Order) ApplyStatus(status workflow.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = time.Now().UTC()
	return nil
}

// UpdateReadiness replaces the readiness flags.
func (o *Order) UpdateReadiness(readiness workflow.Readiness) {
	o.readiness = readiness
	o.updatedAt = time.Now().UTC()
}
