package queries

import (
	"errors"

	"medlogistics/internal/pkg/guard"
)

var ErrGetWorkflowStatsQueryIsNotConstructed = errors.New(
	"GetWorkflowStatsQuery must be created via NewGetWorkflowStatsQuery constructor",
)

// TopTransitionsLimit bounds how many most-travelled edges the statistics
// report.
const TopTransitionsLimit = 5

// GetWorkflowStatsQuery retrieves aggregate statistics over the whole audit
// trail. This is a parameterless query.
type GetWorkflowStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkflowStatsQuery creates a workflow statistics query.
func NewGetWorkflowStatsQuery() GetWorkflowStatsQuery {
	return GetWorkflowStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkflowStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowStatsQueryIsNotConstructed)
}

// TransitionCount is one (from, to) pair with its traversal count.
type TransitionCount struct {
	FromStatus string
	ToStatus   string
	Count      int
}

// GetWorkflowStatsQueryResponse aggregates the audit trail.
//
// AverageStageSeconds is the mean time between consecutive changes of the
// same order; orders with a single recorded change contribute nothing to it.
type GetWorkflowStatsQueryResponse struct {
	TotalTransitions    int
	Rollbacks           int
	TransitionsByRole   map[string]int
	AverageStageSeconds float64
	TopTransitions      []TransitionCount
}
