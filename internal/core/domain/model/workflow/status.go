package workflow

import (
	"fmt"
	"strings"

	"medlogistics/internal/pkg/errs"
)

// Status represents a lifecycle state of a logistics order.
//
// The happy path runs through thirteen canonical states, each with a fixed
// index used for rollback ordering:
//
//	created(0) -> pending_approval(1) -> approved(2) -> doctor_confirmation(3)
//	-> doctor_approved(4) -> templates_ready(5) -> technicians_assigned(6)
//	-> equipment_transported(7) -> remission_created(8) -> surgery_prepared(9)
//	-> surgery_completed(10) -> ready_for_billing(11) -> billed(12)
//
// The side states doctor_rejected, rejected and cancelled are absorbing and
// carry no canonical index; rollback never targets them.
type Status string

const (
	StatusCreated              Status = "created"
	StatusPendingApproval      Status = "pending_approval"
	StatusApproved             Status = "approved"
	StatusDoctorConfirmation   Status = "doctor_confirmation"
	StatusDoctorApproved       Status = "doctor_approved"
	StatusTemplatesReady       Status = "templates_ready"
	StatusTechniciansAssigned  Status = "technicians_assigned"
	StatusEquipmentTransported Status = "equipment_transported"
	StatusRemissionCreated     Status = "remission_created"
	StatusSurgeryPrepared      Status = "surgery_prepared"
	StatusSurgeryCompleted     Status = "surgery_completed"
	StatusReadyForBilling      Status = "ready_for_billing"
	StatusBilled               Status = "billed"

	// Absorbing side states.
	StatusDoctorRejected Status = "doctor_rejected"
	StatusRejected       Status = "rejected"
	StatusCancelled      Status = "cancelled"
)

// canonicalOrder fixes the index of every happy-path state. Side states are
// deliberately absent: an absorbing state has no place in the rollback
// ordering.
var canonicalOrder = map[Status]int{
	StatusCreated:              0,
	StatusPendingApproval:      1,
	StatusApproved:             2,
	StatusDoctorConfirmation:   3,
	StatusDoctorApproved:       4,
	StatusTemplatesReady:       5,
	StatusTechniciansAssigned:  6,
	StatusEquipmentTransported: 7,
	StatusRemissionCreated:     8,
	StatusSurgeryPrepared:      9,
	StatusSurgeryCompleted:     10,
	StatusReadyForBilling:      11,
	StatusBilled:               12,
}

var absorbingStatuses = map[Status]bool{
	StatusDoctorRejected: true,
	StatusRejected:       true,
	StatusCancelled:      true,
}

// ParseStatus canonicalizes an externally supplied status identifier.
// Casing and surrounding whitespace are normalized at the boundary so that
// inconsistent call sites cannot leak into the core contract.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is a member of the declared enumeration.
func (s Status) Validate() error {
	if _, ok := canonicalOrder[s]; ok {
		return nil
	}
	if absorbingStatuses[s] {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a declared status", string(s)))
}

// String returns the canonical snake_case identifier of the status.
func (s Status) String() string {
	return string(s)
}

// CanonicalIndex returns the position of the status in the canonical happy
// path ordering. The second return value is false for absorbing side states
// and for undeclared values.
func (s Status) CanonicalIndex() (int, bool) {
	idx, ok := canonicalOrder[s]
	return idx, ok
}

// IsAbsorbing reports whether the status is one of the terminal side states
// (doctor_rejected, rejected, cancelled) that end normal progression.
func (s Status) IsAbsorbing() bool {
	return absorbingStatuses[s]
}
