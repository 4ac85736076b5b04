package jobs

import (
	"context"
	"log/slog"

	"medlogistics/internal/core/application/usecases/commands"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AutoAdvanceJob sweeps orders parked on automatic edges and advances them
// as the system actor. The request path already walks automatic edges inline
// after each transition; the sweep picks up orders whose preconditions were
// satisfied later, for example by a readiness update.
type AutoAdvanceJob struct {
	handler   commands.TransitionOrderCommandHandler
	orderRepo ports.OrderRepository
	validator *workflow.Validator
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAutoAdvanceJob creates a new auto-advance sweep job.
func NewAutoAdvanceJob(
	handler commands.TransitionOrderCommandHandler,
	orderRepo ports.OrderRepository,
	validator *workflow.Validator,
	logger *slog.Logger,
) *AutoAdvanceJob {
	return &AutoAdvanceJob{
		handler:   handler,
		orderRepo: orderRepo,
		validator: validator,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "auto_advance_job"),
	}
}

// Start begins the sweep job, running every ten seconds.
func (j *AutoAdvanceJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-advance job started (running every ten seconds)")
	return nil
}

// RunOnce inspects every status with an outgoing automatic edge and tries to
// advance each order parked there. Unmet preconditions leave the order in
// place; a concurrency conflict means another writer is already moving it.
func (j *AutoAdvanceJob) RunOnce(ctx context.Context) {
	for _, source := range j.validator.Graph().AutomaticSources() {
		orders, err := j.orderRepo.GetAllInStatus(ctx, source)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto-advance sweep failed to list orders",
				"status", source.String(), "error", err)
			continue
		}

		for _, aggregate := range orders {
			steps, err := j.handler.AutoAdvance(ctx, aggregate)
			if err != nil {
				j.logger.ErrorContext(ctx, "Auto-advance failed",
					"order_id", aggregate.ID().String(), "error", err)
				continue
			}
			if steps > 0 {
				j.logger.InfoContext(ctx, "Auto-advance moved order",
					"order_id", aggregate.ID().String(),
					"steps", steps,
					"status", aggregate.Status().String())
			}
		}
	}
}

// Stop stops the sweep job.
func (j *AutoAdvanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-advance job stopped")
}
