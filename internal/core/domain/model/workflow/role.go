package workflow

import (
	"fmt"
	"strings"

	"medlogistics/internal/pkg/errs"
)

// Role identifies the kind of actor requesting a transition. Roles are
// canonicalized at the system boundary; the core only ever sees members of
// this enumeration.
type Role string

const (
	RoleCommercial        Role = "commercial"
	RoleOperationsManager Role = "operations_manager"
	RoleDoctor            Role = "doctor"
	RoleWarehouseLead     Role = "warehouse_lead"
	RoleTechnician        Role = "technician"
	RoleFinance           Role = "finance"
	RoleAdministrator     Role = "administrator"

	// RoleSystem is the actor for automatic follow-on transitions triggered
	// by the auto-advance policy. It is never accepted from external callers
	// of the rollback endpoint.
	RoleSystem Role = "system"
)

var validRoles = map[Role]bool{
	RoleCommercial:        true,
	RoleOperationsManager: true,
	RoleDoctor:            true,
	RoleWarehouseLead:     true,
	RoleTechnician:        true,
	RoleFinance:           true,
	RoleAdministrator:     true,
	RoleSystem:            true,
}

// elevatedRoles may invoke the rollback escape hatch.
var elevatedRoles = map[Role]bool{
	RoleAdministrator:     true,
	RoleOperationsManager: true,
}

// ParseRole canonicalizes an externally supplied role identifier.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is a member of the declared enumeration.
func (r Role) Validate() error {
	if validRoles[r] {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a declared role", string(r)))
}

// String returns the canonical snake_case identifier of the role.
func (r Role) String() string {
	return string(r)
}

// IsElevated reports whether the role may invoke administrative rollback.
func (r Role) IsElevated() bool {
	return elevatedRoles[r]
}
