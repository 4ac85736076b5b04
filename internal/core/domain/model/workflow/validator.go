package workflow

import "fmt"

// Readiness is the slice of order state that precondition predicates read.
// The order aggregate exposes its readiness snapshot; keeping the snapshot a
// plain value avoids a dependency cycle between the order and workflow
// packages.
type Readiness struct {
	ResourcesVerified    bool
	TemplatesAvailable   bool
	TechniciansAvailable bool
	EquipmentReady       bool
	EvidenceUploaded     bool
	DeliveryNoteSigned   bool
}

// Predicate evaluates one named business rule against an order's readiness.
type Predicate func(Readiness) bool

// ConditionCheck pairs a predicate with the human-readable action a caller
// must complete when the predicate does not hold.
type ConditionCheck struct {
	Description string
	Met         Predicate
}

// FailureKind discriminates why a validation failed, so the lifecycle service
// can surface the most specific error kind.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNoEdge
	FailureRole
	FailurePrecondition
)

// ValidationResult reports the outcome of validating a single transition
// request. RequiredActions lists unmet hard guards; Warnings lists unmet
// advisory conditions, which never block.
type ValidationResult struct {
	IsValid         bool
	Errors          []string
	Warnings        []string
	RequiredActions []string
	Failure         FailureKind
}

// Validator determines transition legality against the declared graph and a
// registry of precondition predicates. It holds only immutable state and is
// safe for concurrent use.
type Validator struct {
	graph      *Graph
	conditions map[Condition]ConditionCheck
}

// NewValidator creates a validator over the given graph with the given
// condition registry. The registry is injected so business rules can be
// swapped or unit-tested independently of the graph.
func NewValidator(graph *Graph, conditions map[Condition]ConditionCheck) *Validator {
	registry := make(map[Condition]ConditionCheck, len(conditions))
	for name, check := range conditions {
		registry[name] = check
	}
	return &Validator{graph: graph, conditions: registry}
}

// Graph returns the transition graph the validator consults.
func (v *Validator) Graph() *Graph {
	return v.graph
}

// Validate checks a single transition request in three steps: edge lookup,
// role authorization, then precondition guards. Unmet hard guards fail the
// validation and are reported as required actions; unmet advisory conditions
// are reported as warnings only. An unregistered condition is treated as
// unmet rather than silently satisfied.
func (v *Validator) Validate(from, to Status, role Role, readiness Readiness) ValidationResult {
	edge, ok := v.graph.Edge(from, to)
	if !ok {
		return ValidationResult{
			IsValid: false,
			Errors:  []string{fmt.Sprintf("no declared transition from %s to %s", from, to)},
			Failure: FailureNoEdge,
		}
	}

	if !edge.AllowsRole(role) {
		return ValidationResult{
			IsValid: false,
			Errors:  []string{fmt.Sprintf("role %s is not authorized for %s -> %s", role, from, to)},
			Failure: FailureRole,
		}
	}

	result := ValidationResult{IsValid: true, Failure: FailureNone}

	for _, condition := range edge.RequiredConditions {
		if action, met := v.evaluate(condition, readiness); !met {
			result.RequiredActions = append(result.RequiredActions, action)
		}
	}
	for _, condition := range edge.AdvisoryConditions {
		if action, met := v.evaluate(condition, readiness); !met {
			result.Warnings = append(result.Warnings, action)
		}
	}

	if len(result.RequiredActions) > 0 {
		result.IsValid = false
		result.Failure = FailurePrecondition
	}

	return result
}

// evaluate runs one condition predicate and returns the action text to
// report when it is unmet.
func (v *Validator) evaluate(condition Condition, readiness Readiness) (string, bool) {
	check, registered := v.conditions[condition]
	if !registered {
		return fmt.Sprintf("Condition %s has no registered check", condition), false
	}
	return check.Description, check.Met(readiness)
}

// DefaultConditions returns the production condition registry. Each entry
// maps a declared condition name to its readiness predicate and the action
// text reported when the predicate does not hold.
func DefaultConditions() map[Condition]ConditionCheck {
	return map[Condition]ConditionCheck{
		ConditionResourceAvailability: {
			Description: "Verify resource availability",
			Met:         func(r Readiness) bool { return r.ResourcesVerified },
		},
		ConditionTemplatesAvailable: {
			Description: "Confirm surgical templates are available",
			Met:         func(r Readiness) bool { return r.TemplatesAvailable },
		},
		ConditionTechniciansAvailable: {
			Description: "Confirm technicians are available",
			Met:         func(r Readiness) bool { return r.TechniciansAvailable },
		},
		ConditionEquipmentReady: {
			Description: "Confirm equipment is packed and ready for transport",
			Met:         func(r Readiness) bool { return r.EquipmentReady },
		},
		ConditionEvidenceUploaded: {
			Description: "Upload procedure evidence",
			Met:         func(r Readiness) bool { return r.EvidenceUploaded },
		},
		ConditionDeliveryNoteSigned: {
			Description: "Obtain the signed delivery note",
			Met:         func(r Readiness) bool { return r.DeliveryNoteSigned },
		},
	}
}
