package workflow

import (
	"fmt"

	"medlogistics/internal/pkg/errs"
)

// Condition names a business-rule guard attached to a transition edge.
// The predicate behind a condition lives in the Validator's registry, so the
// graph and the business rules evolve independently.
type Condition string

const (
	ConditionResourceAvailability Condition = "resource_availability"
	ConditionTemplatesAvailable   Condition = "templates_available"
	ConditionTechniciansAvailable Condition = "technicians_available"
	ConditionEquipmentReady       Condition = "equipment_ready"
	ConditionEvidenceUploaded     Condition = "evidence_uploaded"
	ConditionDeliveryNoteSigned   Condition = "delivery_note_signed"
)

// Transition is a single declared edge of the lifecycle graph.
//
// RequiredConditions are hard guards: an unmet one blocks the transition.
// AdvisoryConditions are reported as warnings only and never block. The split
// is declared data on the edge, never inferred from the condition itself.
type Transition struct {
	From                     Status
	To                       Status
	AllowedRoles             []Role
	RequiredConditions       []Condition
	AdvisoryConditions       []Condition
	Automatic                bool
	Description              string
	EstimatedDurationMinutes int
}

// AllowsRole reports whether the given role may apply this edge.
func (t Transition) AllowsRole(role Role) bool {
	for _, r := range t.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Graph is the immutable table of legal transitions, indexed by source state
// for O(1) amortized lookup. It is built once at startup and shared read-only
// across all concurrent callers.
type Graph struct {
	byFrom map[Status][]Transition
}

// NewGraph builds a Graph from the declared edges. Construction fails on the
// first malformed edge: undeclared states or roles, an absorbing source with
// no way back, or a duplicate (from, to) pair.
func NewGraph(edges []Transition) (*Graph, error) {
	byFrom := make(map[Status][]Transition, len(edges))
	seen := make(map[[2]Status]bool, len(edges))

	for _, edge := range edges {
		if err := edge.From.Validate(); err != nil {
			return nil, err
		}
		if err := edge.To.Validate(); err != nil {
			return nil, err
		}
		if len(edge.AllowedRoles) == 0 {
			return nil, errs.NewValueIsRequiredError(
				fmt.Sprintf("allowed roles for edge %s -> %s", edge.From, edge.To))
		}
		for _, role := range edge.AllowedRoles {
			if err := role.Validate(); err != nil {
				return nil, err
			}
		}

		key := [2]Status{edge.From, edge.To}
		if seen[key] {
			return nil, errs.NewValueIsInvalidErrorWithCause("transition graph",
				fmt.Errorf("duplicate edge %s -> %s", edge.From, edge.To))
		}
		seen[key] = true

		byFrom[edge.From] = append(byFrom[edge.From], edge)
	}

	return &Graph{byFrom: byFrom}, nil
}

// Edge returns the declared edge between two states, if any.
func (g *Graph) Edge(from, to Status) (Transition, bool) {
	for _, edge := range g.byFrom[from] {
		if edge.To == to {
			return edge, true
		}
	}
	return Transition{}, false
}

// ValidTransitions returns all declared edges leaving the given status that
// the given role is authorized to apply. The returned slice is a copy; the
// graph itself is never exposed for mutation.
func (g *Graph) ValidTransitions(from Status, role Role) []Transition {
	edges := g.byFrom[from]
	result := make([]Transition, 0, len(edges))
	for _, edge := range edges {
		if edge.AllowsRole(role) {
			result = append(result, edge)
		}
	}
	return result
}

// OutgoingAutomatic returns the automatic edge leaving the given status, if
// one is declared. At most one automatic edge per source state is expected;
// the first declared wins.
func (g *Graph) OutgoingAutomatic(from Status) (Transition, bool) {
	for _, edge := range g.byFrom[from] {
		if edge.Automatic {
			return edge, true
		}
	}
	return Transition{}, false
}

// AutomaticSources returns every status that has an outgoing automatic edge.
// Used by the auto-advance sweep job to know which orders to inspect.
func (g *Graph) AutomaticSources() []Status {
	var sources []Status
	for from, edges := range g.byFrom {
		for _, edge := range edges {
			if edge.Automatic {
				sources = append(sources, from)
				break
			}
		}
	}
	return sources
}

// DefaultGraph declares the production transition table.
//
// When requireApproval is false the commercial intake edge
// created -> pending_approval is marked automatic, so freshly created orders
// are picked up by the auto-advance machinery without a human trigger.
func DefaultGraph(requireApproval bool) (*Graph, error) {
	intake := Transition{
		From:                     StatusCreated,
		To:                       StatusPendingApproval,
		AllowedRoles:             []Role{RoleCommercial, RoleOperationsManager, RoleSystem},
		Description:              "Submit order for operations approval",
		EstimatedDurationMinutes: 30,
	}
	if !requireApproval {
		intake.Automatic = true
	}

	return NewGraph([]Transition{
		intake,
		{
			From:         StatusCreated,
			To:           StatusCancelled,
			AllowedRoles: []Role{RoleCommercial, RoleOperationsManager, RoleAdministrator},
			Description:  "Cancel order before submission",
		},
		{
			From:                     StatusPendingApproval,
			To:                       StatusApproved,
			AllowedRoles:             []Role{RoleOperationsManager, RoleAdministrator},
			RequiredConditions:       []Condition{ConditionResourceAvailability},
			Description:              "Approve order for scheduling",
			EstimatedDurationMinutes: 60,
		},
		{
			From:         StatusPendingApproval,
			To:           StatusRejected,
			AllowedRoles: []Role{RoleOperationsManager, RoleAdministrator},
			Description:  "Reject order at operations review",
		},
		{
			From:         StatusPendingApproval,
			To:           StatusCancelled,
			AllowedRoles: []Role{RoleCommercial, RoleOperationsManager},
			Description:  "Cancel order during operations review",
		},
		{
			From:                     StatusApproved,
			To:                       StatusDoctorConfirmation,
			AllowedRoles:             []Role{RoleOperationsManager, RoleCommercial},
			Description:              "Send order to the doctor for confirmation",
			EstimatedDurationMinutes: 120,
		},
		{
			From:         StatusApproved,
			To:           StatusCancelled,
			AllowedRoles: []Role{RoleOperationsManager, RoleAdministrator},
			Description:  "Cancel approved order",
		},
		{
			From:                     StatusDoctorConfirmation,
			To:                       StatusDoctorApproved,
			AllowedRoles:             []Role{RoleDoctor},
			Description:              "Doctor confirms the procedure plan",
			EstimatedDurationMinutes: 45,
		},
		{
			From:         StatusDoctorConfirmation,
			To:           StatusDoctorRejected,
			AllowedRoles: []Role{RoleDoctor},
			Description:  "Doctor rejects the procedure plan",
		},
		{
			From:         StatusDoctorRejected,
			To:           StatusDoctorConfirmation,
			AllowedRoles: []Role{RoleOperationsManager, RoleAdministrator},
			Description:  "Resubmit a corrected plan to the doctor",
		},
		{
			From:                     StatusDoctorApproved,
			To:                       StatusTemplatesReady,
			AllowedRoles:             []Role{RoleWarehouseLead},
			RequiredConditions:       []Condition{ConditionTemplatesAvailable},
			Description:              "Prepare surgical templates in the warehouse",
			EstimatedDurationMinutes: 45,
		},
		{
			From:                     StatusTemplatesReady,
			To:                       StatusTechniciansAssigned,
			AllowedRoles:             []Role{RoleOperationsManager, RoleWarehouseLead},
			RequiredConditions:       []Condition{ConditionTechniciansAvailable},
			Description:              "Assign field technicians to the procedure",
			EstimatedDurationMinutes: 30,
		},
		{
			From:                     StatusTechniciansAssigned,
			To:                       StatusEquipmentTransported,
			AllowedRoles:             []Role{RoleTechnician, RoleWarehouseLead},
			RequiredConditions:       []Condition{ConditionEquipmentReady},
			Description:              "Transport equipment to the clinic",
			EstimatedDurationMinutes: 180,
		},
		{
			From:                     StatusEquipmentTransported,
			To:                       StatusRemissionCreated,
			AllowedRoles:             []Role{RoleWarehouseLead, RoleSystem},
			Automatic:                true,
			Description:              "Generate the remission paperwork",
			EstimatedDurationMinutes: 15,
		},
		{
			From:                     StatusRemissionCreated,
			To:                       StatusSurgeryPrepared,
			AllowedRoles:             []Role{RoleTechnician},
			Description:              "Set up equipment in the operating room",
			EstimatedDurationMinutes: 60,
		},
		{
			From:                     StatusSurgeryPrepared,
			To:                       StatusSurgeryCompleted,
			AllowedRoles:             []Role{RoleTechnician, RoleDoctor},
			Description:              "Procedure finished",
			EstimatedDurationMinutes: 240,
		},
		{
			From:                     StatusSurgeryCompleted,
			To:                       StatusReadyForBilling,
			AllowedRoles:             []Role{RoleTechnician, RoleFinance, RoleOperationsManager},
			RequiredConditions:       []Condition{ConditionEvidenceUploaded},
			Description:              "Collect usage evidence and close the field work",
			EstimatedDurationMinutes: 30,
		},
		{
			From:                     StatusReadyForBilling,
			To:                       StatusBilled,
			AllowedRoles:             []Role{RoleFinance},
			AdvisoryConditions:       []Condition{ConditionDeliveryNoteSigned},
			Description:              "Issue the invoice",
			EstimatedDurationMinutes: 1440,
		},
	})
}
