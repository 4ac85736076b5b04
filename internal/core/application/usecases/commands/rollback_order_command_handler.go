package commands

import (
	"context"
	"fmt"
	"log/slog"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/core/ports"
	"medlogistics/internal/pkg/errs"
)

// RollbackResult reports the outcome of a rollback: the order at its
// restored status and the tagged audit entry.
type RollbackResult struct {
	Order *order.Order
	Entry *audit.Entry
}

// RollbackOrderCommandHandler applies administrative rollbacks.
//
// Rollbacks bypass the transition graph but not the audit trail or the
// concurrency control. The policy is strict: only elevated roles may roll
// back, the target must sit strictly earlier on the main sequence than the
// current status, and terminal side statuses are reachable neither as
// source nor as target.
type RollbackOrderCommandHandler struct {
	orderRepository   ports.OrderRepository
	historyRepository ports.HistoryRepository
	auditQueue        ports.AuditQueue
	notifier          ports.Notifier
	config            workflow.Config
	logger            *slog.Logger
}

// NewRollbackOrderCommandHandler creates the rollback handler.
func NewRollbackOrderCommandHandler(
	orderRepository ports.OrderRepository,
	historyRepository ports.HistoryRepository,
	auditQueue ports.AuditQueue,
	notifier ports.Notifier,
	config workflow.Config,
	logger *slog.Logger,
) RollbackOrderCommandHandler {
	return RollbackOrderCommandHandler{
		orderRepository:   orderRepository,
		historyRepository: historyRepository,
		auditQueue:        auditQueue,
		notifier:          notifier,
		config:            config,
		logger:            logger,
	}
}

// Handle processes one rollback request. The order stays at the restored
// status afterwards: automatic edges are not walked, otherwise the workflow
// could immediately redo what the administrator just undid.
func (h *RollbackOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RollbackOrderCommand,
) (RollbackResult, error) {
	if err := cmd.Validate(); err != nil {
		return RollbackResult{}, err
	}

	if !cmd.Role().IsElevated() {
		return RollbackResult{}, errs.NewNotAuthorizedError(cmd.Role().String(), "", cmd.TargetStatus().String())
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return RollbackResult{}, err
	}

	from := aggregate.Status()
	target := cmd.TargetStatus()

	if err = checkRollbackPolicy(from, target); err != nil {
		return RollbackResult{}, err
	}

	entry, err := audit.NewRollbackEntry(aggregate.ID(), from, target,
		cmd.ActorID(), cmd.Role(), cmd.Reason(), cmd.Metadata())
	if err != nil {
		return RollbackResult{}, err
	}

	if err = h.orderRepository.UpdateStatus(ctx, aggregate.ID(), target, from); err != nil {
		return RollbackResult{}, err
	}
	if err = aggregate.ApplyStatus(target); err != nil {
		return RollbackResult{}, err
	}

	if err = h.historyRepository.Append(ctx, entry); err != nil {
		h.logger.Warn("audit append failed, entry queued for retry",
			"order_id", entry.OrderID().String(),
			"to_status", entry.ToStatus().String(),
			"error", err)
		h.auditQueue.Enqueue(entry)
	}

	// Same fire-and-forget channel as forward transitions. A slow broker
	// must not delay the rollback response.
	if h.config.NotifyOnTransition && h.notifier != nil {
		notifyAsync(h.notifier, h.logger, aggregate, entry)
	}

	if h.config.LogAllChanges {
		h.logger.Info("order status rolled back",
			"order_id", aggregate.ID().String(),
			"from_status", from.String(),
			"to_status", target.String(),
			"actor", cmd.ActorID(),
			"role", cmd.Role().String())
	}

	return RollbackResult{Order: aggregate, Entry: entry}, nil
}

// checkRollbackPolicy enforces strict backwards movement along the main
// sequence.
func checkRollbackPolicy(from, target workflow.Status) error {
	if target.IsAbsorbing() {
		return errs.NewRollbackPolicyError(from.String(), target.String(), "target is a terminal side status")
	}

	targetIdx, ok := target.CanonicalIndex()
	if !ok {
		return errs.NewRollbackPolicyError(from.String(), target.String(), "target has no position on the main sequence")
	}

	fromIdx, ok := from.CanonicalIndex()
	if !ok {
		return errs.NewRollbackPolicyError(from.String(), target.String(), "current status has no position on the main sequence")
	}

	if targetIdx >= fromIdx {
		return errs.NewRollbackPolicyError(from.String(), target.String(),
			fmt.Sprintf("target position %d is not earlier than current position %d", targetIdx, fromIdx))
	}

	return nil
}
