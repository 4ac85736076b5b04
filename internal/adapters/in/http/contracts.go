package http

import "time"

// Error is the uniform error payload. RequiredActions is populated only for
// precondition failures, so clients can show what is still missing.
type Error struct {
	Code            int      `json:"code"`
	Message         string   `json:"message"`
	RequiredActions []string `json:"required_actions,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	PatientName string `json:"patient_name"`
	Procedure   string `json:"procedure"`
}

// TransitionRequest is the body of POST /api/v1/orders/:id/transition.
type TransitionRequest struct {
	ToStatus string `json:"to_status"`
	Role     string `json:"role"`
	ActorID  string `json:"actor_id"`
	Notes    string `json:"notes,omitempty"`
}

// RollbackRequest is the body of POST /api/v1/orders/:id/rollback.
type RollbackRequest struct {
	TargetStatus string `json:"target_status"`
	Role         string `json:"role"`
	ActorID      string `json:"actor_id"`
	Reason       string `json:"reason"`
}

// ReadinessRequest is the body of PATCH /api/v1/orders/:id/readiness.
type ReadinessRequest struct {
	ResourcesVerified    bool `json:"resources_verified"`
	TemplatesAvailable   bool `json:"templates_available"`
	TechniciansAvailable bool `json:"technicians_available"`
	EquipmentReady       bool `json:"equipment_ready"`
	EvidenceUploaded     bool `json:"evidence_uploaded"`
	DeliveryNoteSigned   bool `json:"delivery_note_signed"`
}

// Order is the outward representation of an order.
type Order struct {
	ID          string           `json:"id"`
	PatientName string           `json:"patient_name"`
	Procedure   string           `json:"procedure"`
	Status      string           `json:"status"`
	Readiness   ReadinessRequest `json:"readiness"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TransitionResponse reports a committed transition.
type TransitionResponse struct {
	Order        Order  `json:"order"`
	AuditEntryID string `json:"audit_entry_id"`
}

// ValidTransition describes one edge the queried role may apply.
type ValidTransition struct {
	ToStatus                 string   `json:"to_status"`
	Description              string   `json:"description"`
	Available                bool     `json:"available"`
	RequiredActions          []string `json:"required_actions,omitempty"`
	Warnings                 []string `json:"warnings,omitempty"`
	Automatic                bool     `json:"automatic"`
	EstimatedDurationMinutes int      `json:"estimated_duration_minutes"`
}

// HistoryEntry is one audit record of an order's trail.
type HistoryEntry struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Role       string    `json:"role"`
	ChangedAt  time.Time `json:"changed_at"`
	Notes      string    `json:"notes,omitempty"`
	IsRollback bool      `json:"is_rollback"`
}

// TransitionCount is one (from, to) pair with its traversal count.
type TransitionCount struct {
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Count      int    `json:"count"`
}

// Stats aggregates the audit trail.
type Stats struct {
	TotalTransitions    int              `json:"total_transitions"`
	Rollbacks           int              `json:"rollbacks"`
	TransitionsByRole   map[string]int   `json:"transitions_by_role"`
	AverageStageSeconds float64          `json:"average_stage_seconds"`
	TopTransitions      []TransitionCount `json:"top_transitions"`
}
