package audit

import (
	"errors"
	"strings"
	"time"

	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry was not created
	// through one of the factory methods.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry, NewRollbackEntry or RestoreEntry")
)

// RollbackNotesPrefix marks the notes of a rollback entry. The mandatory
// reason is stored verbatim after the prefix.
const RollbackNotesPrefix = "ROLLBACK: "

// Metadata carries optional request context captured with an entry.
type Metadata struct {
	IP       string
	Agent    string
	Location string
}

// Entry is one immutable record of a status change.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	fromStatus workflow.Status
	toStatus   workflow.Status
	changedBy  string
	role       workflow.Role
	changedAt  time.Time
	notes      string
	rollback   bool
	metadata   Metadata

	isConstructed bool
}

// NewEntry creates the audit record for an ordinary forward transition.
func NewEntry(
	orderID kernel.UUID,
	from, to workflow.Status,
	changedBy string,
	role workflow.Role,
	notes string,
	metadata Metadata,
) (*Entry, error) {
	if err := validateParts(orderID, from, to, changedBy, role); err != nil {
		return nil, err
	}

	return &Entry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		fromStatus:    from,
		toStatus:      to,
		changedBy:     changedBy,
		role:          role,
		changedAt:     time.Now().UTC(),
		notes:         notes,
		metadata:      metadata,
		isConstructed: true,
	}, nil
}

// NewRollbackEntry creates the tagged audit record for an administrative
// rollback. The reason is mandatory and stored verbatim in the notes behind
// RollbackNotesPrefix.
func NewRollbackEntry(
	orderID kernel.UUID,
	from, to workflow.Status,
	changedBy string,
	role workflow.Role,
	reason string,
	metadata Metadata,
) (*Entry, error) {
	if err := validateParts(orderID, from, to, changedBy, role); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("rollback reason")
	}

	return &Entry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		fromStatus:    from,
		toStatus:      to,
		changedBy:     changedBy,
		role:          role,
		changedAt:     time.Now().UTC(),
		notes:         RollbackNotesPrefix + reason,
		rollback:      true,
		metadata:      metadata,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id, orderID kernel.UUID,
	from, to workflow.Status,
	changedBy string,
	role workflow.Role,
	changedAt time.Time,
	notes string,
	rollback bool,
	metadata Metadata,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := validateParts(orderID, from, to, changedBy, role); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		fromStatus:    from,
		toStatus:      to,
		changedBy:     changedBy,
		role:          role,
		changedAt:     changedAt,
		notes:         notes,
		rollback:      rollback,
		metadata:      metadata,
		isConstructed: true,
	}, nil
}

func validateParts(orderID kernel.UUID, from, to workflow.Status, changedBy string, role workflow.Role) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if changedBy == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	return role.Validate()
}

// Validate ensures the Entry was created through a factory method.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// FromStatus returns the status the order left.
func (e *Entry) FromStatus() workflow.Status {
	return e.fromStatus
}

// ToStatus returns the status the order entered.
func (e *Entry) ToStatus() workflow.Status {
	return e.toStatus
}

// ChangedBy returns the acting actor's identifier.
func (e *Entry) ChangedBy() string {
	return e.changedBy
}

// Role returns the role the actor held for the change.
func (e *Entry) Role() workflow.Role {
	return e.role
}

// ChangedAt returns when the change was applied.
func (e *Entry) ChangedAt() time.Time {
	return e.changedAt
}

// Notes returns the free-form notes, including the rollback prefix and
// reason for rollback entries.
func (e *Entry) Notes() string {
	return e.notes
}

// IsRollback reports whether the entry records an administrative rollback
// rather than a forward transition.
func (e *Entry) IsRollback() bool {
	return e.rollback
}

// Metadata returns the optional request context captured with the entry.
func (e *Entry) Metadata() Metadata {
	return e.metadata
}
