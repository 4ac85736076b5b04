package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/core/ports"
	"medlogistics/internal/pkg/errs"
)

// SystemActorID identifies automatic transitions in the audit trail.
const SystemActorID = "system"

const notifyTimeout = 5 * time.Second

// TransitionResult reports the outcome of a transition request: the order
// with its final status, including any automatic follow-up moves, and the
// audit entry of the requested transition itself.
type TransitionResult struct {
	Order *order.Order
	Entry *audit.Entry
}

// TransitionOrderCommandHandler is the single writer of order status.
//
// For every transition it validates the requested edge against the workflow
// graph, commits the change with a conditional update keyed on the expected
// current status, records the audit entry, and walks automatic follow-up
// edges as the system actor. The audit append is decoupled from the status
// commit: a failed append parks the entry on the retry queue instead of
// undoing the committed change.
type TransitionOrderCommandHandler struct {
	orderRepository   ports.OrderRepository
	historyRepository ports.HistoryRepository
	auditQueue        ports.AuditQueue
	notifier          ports.Notifier
	validator         *workflow.Validator
	config            workflow.Config
	logger            *slog.Logger
}

// NewTransitionOrderCommandHandler creates the lifecycle handler.
func NewTransitionOrderCommandHandler(
	orderRepository ports.OrderRepository,
	historyRepository ports.HistoryRepository,
	auditQueue ports.AuditQueue,
	notifier ports.Notifier,
	validator *workflow.Validator,
	config workflow.Config,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		orderRepository:   orderRepository,
		historyRepository: historyRepository,
		auditQueue:        auditQueue,
		notifier:          notifier,
		validator:         validator,
		config:            config,
		logger:            logger,
	}
}

// Handle processes one transition request and, when the workflow policy
// enables it, any automatic edges that become walkable afterwards.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	entry, err := h.apply(ctx, aggregate, cmd.TargetStatus(), cmd.ActorID(), cmd.Role(), cmd.Notes(), cmd.Metadata())
	if err != nil {
		return TransitionResult{}, err
	}

	// The requested transition is committed and audited at this point, so an
	// auto-advance failure must not be reported as a failure of the request.
	// The order stays parked on its committed status for the sweep job.
	if h.config.AutoAdvance {
		if _, err = h.AutoAdvance(ctx, aggregate); err != nil {
			h.logger.Warn("auto-advance stopped after committed transition",
				"order_id", aggregate.ID().String(),
				"status", aggregate.Status().String(),
				"error", err)
		}
	}

	return TransitionResult{Order: aggregate, Entry: entry}, nil
}

// AutoAdvance walks automatic edges from the order's current status until
// none fires, acting as the system actor. An automatic edge whose hard
// preconditions are unmet simply stays parked for a later sweep; a
// concurrency conflict means another writer took over and stops the walk.
// Returns the number of transitions applied.
func (h *TransitionOrderCommandHandler) AutoAdvance(ctx context.Context, aggregate *order.Order) (int, error) {
	steps := 0
	for {
		edge, ok := h.validator.Graph().OutgoingAutomatic(aggregate.Status())
		if !ok {
			return steps, nil
		}

		_, err := h.apply(ctx, aggregate, edge.To, SystemActorID, workflow.RoleSystem, edge.Description, audit.Metadata{})
		if err != nil {
			if errors.Is(err, errs.ErrPreconditionFailed) || errors.Is(err, errs.ErrConcurrencyConflict) {
				return steps, nil
			}
			return steps, err
		}
		steps++
	}
}

// apply performs one validated transition: graph check, conditional status
// commit, audit record, notification. The aggregate is updated in memory
// only after the store accepted the change.
func (h *TransitionOrderCommandHandler) apply(
	ctx context.Context,
	aggregate *order.Order,
	target workflow.Status,
	actorID string,
	role workflow.Role,
	notes string,
	metadata audit.Metadata,
) (*audit.Entry, error) {
	from := aggregate.Status()

	result := h.validator.Validate(from, target, role, aggregate.Readiness())
	if !result.IsValid {
		switch result.Failure {
		case workflow.FailureNoEdge:
			return nil, errs.NewTransitionNotFoundError(from.String(), target.String())
		case workflow.FailureRole:
			return nil, errs.NewNotAuthorizedError(role.String(), from.String(), target.String())
		default:
			return nil, errs.NewPreconditionFailedError(from.String(), target.String(), result.RequiredActions, result.Warnings)
		}
	}

	entry, err := audit.NewEntry(aggregate.ID(), from, target, actorID, role, notes, metadata)
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.UpdateStatus(ctx, aggregate.ID(), target, from); err != nil {
		return nil, err
	}
	if err = aggregate.ApplyStatus(target); err != nil {
		return nil, err
	}

	h.recordEntry(ctx, entry)
	h.notify(aggregate, entry)

	if h.config.LogAllChanges {
		h.logger.Info("order status changed",
			"order_id", aggregate.ID().String(),
			"from_status", from.String(),
			"to_status", target.String(),
			"actor", actorID,
			"role", role.String())
	}

	return entry, nil
}

func (h *TransitionOrderCommandHandler) recordEntry(ctx context.Context, entry *audit.Entry) {
	if err := h.historyRepository.Append(ctx, entry); err != nil {
		h.logger.Warn("audit append failed, entry queued for retry",
			"order_id", entry.OrderID().String(),
			"to_status", entry.ToStatus().String(),
			"error", err)
		h.auditQueue.Enqueue(entry)
	}
}

// notify publishes the status change in the background. Delivery is best
// effort and never affects the committed transition.
func (h *TransitionOrderCommandHandler) notify(aggregate *order.Order, entry *audit.Entry) {
	if !h.config.NotifyOnTransition || h.notifier == nil {
		return
	}

	// The caller keeps advancing the aggregate, so the goroutine gets its
	// own snapshot.
	snapshot, err := order.RestoreOrder(aggregate.ID(), aggregate.PatientName(), aggregate.Procedure(),
		aggregate.Status(), aggregate.Readiness(), aggregate.UpdatedAt())
	if err != nil {
		return
	}

	notifyAsync(h.notifier, h.logger, snapshot, entry)
}

// notifyAsync publishes a status change from its own goroutine with a bounded
// timeout. Delivery is best effort and never blocks the calling handler.
func notifyAsync(notifier ports.Notifier, logger *slog.Logger, snapshot *order.Order, entry *audit.Entry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := notifier.NotifyStatusChanged(ctx, snapshot, entry); err != nil {
			logger.Warn("status change notification failed",
				"order_id", entry.OrderID().String(),
				"error", err)
		}
	}()
}
