package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkflowStatsQueryHandler aggregates the audit trail into workflow
// statistics. Rows are read ordered by order and time, so per-order stage
// durations fall out of a single pass.
type GetWorkflowStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkflowStatsQueryHandler creates a handler for statistics queries.
func NewGetWorkflowStatsQueryHandler(db *gorm.DB) GetWorkflowStatsQueryHandler {
	return GetWorkflowStatsQueryHandler{db: db}
}

// Handle executes the query over the full audit trail.
func (h GetWorkflowStatsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkflowStatsQuery,
) (GetWorkflowStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkflowStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			from_status,
			to_status,
			role,
			changed_at,
			is_rollback
		FROM order_history
		ORDER BY order_id, changed_at
	`).Rows()
	if err != nil {
		return GetWorkflowStatsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetWorkflowStatsQueryResponse{
		TransitionsByRole: make(map[string]int),
	}
	pairCounts := make(map[[2]string]int)

	var prevOrderID uuid.UUID
	var prevChangedAt time.Time
	var gapTotal time.Duration
	var gapCount int

	for rows.Next() {
		var orderID uuid.UUID
		var fromStatus, toStatus, role string
		var changedAt time.Time
		var isRollback bool

		err = rows.Scan(&orderID, &fromStatus, &toStatus, &role, &changedAt, &isRollback)
		if err != nil {
			return GetWorkflowStatsQueryResponse{}, err
		}

		response.TotalTransitions++
		if isRollback {
			response.Rollbacks++
		}
		response.TransitionsByRole[role]++
		pairCounts[[2]string{fromStatus, toStatus}]++

		if orderID == prevOrderID && changedAt.After(prevChangedAt) {
			gapTotal += changedAt.Sub(prevChangedAt)
			gapCount++
		}
		prevOrderID = orderID
		prevChangedAt = changedAt
	}

	if err = rows.Err(); err != nil {
		return GetWorkflowStatsQueryResponse{}, err
	}

	if gapCount > 0 {
		response.AverageStageSeconds = gapTotal.Seconds() / float64(gapCount)
	}

	response.TopTransitions = topTransitions(pairCounts, TopTransitionsLimit)
	return response, nil
}

// topTransitions picks the most travelled edges, breaking count ties by the
// pair's names so the result is deterministic.
func topTransitions(pairCounts map[[2]string]int, limit int) []TransitionCount {
	counts := make([]TransitionCount, 0, len(pairCounts))
	for pair, count := range pairCounts {
		counts = append(counts, TransitionCount{FromStatus: pair[0], ToStatus: pair[1], Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		if counts[i].FromStatus != counts[j].FromStatus {
			return counts[i].FromStatus < counts[j].FromStatus
		}
		return counts[i].ToStatus < counts[j].ToStatus
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
