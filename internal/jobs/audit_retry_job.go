package jobs

import (
	"context"
	"log/slog"

	"medlogistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AuditRetryJob periodically drains the audit queue and re-appends the
// buffered entries to the history store.
type AuditRetryJob struct {
	queue   ports.AuditQueue
	history ports.HistoryRepository
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAuditRetryJob creates a new audit retry job.
func NewAuditRetryJob(queue ports.AuditQueue, history ports.HistoryRepository, logger *slog.Logger) *AuditRetryJob {
	return &AuditRetryJob{
		queue:   queue,
		history: history,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "audit_retry_job"),
	}
}

// Start begins the retry job, running every ten seconds.
func (j *AuditRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit retry job started (running every ten seconds)")
	return nil
}

// RunOnce drains the queue and retries every buffered entry. Entries that
// fail again go back on the queue for the next run.
func (j *AuditRetryJob) RunOnce(ctx context.Context) {
	entries := j.queue.Drain()
	if len(entries) == 0 {
		return
	}

	var failed int
	for _, entry := range entries {
		if err := j.history.Append(ctx, entry); err != nil {
			j.queue.Enqueue(entry)
			failed++
		}
	}

	if failed > 0 {
		j.logger.WarnContext(ctx, "Audit retry incomplete",
			"retried", len(entries), "still_failing", failed)
	} else {
		j.logger.InfoContext(ctx, "Audit retry drained queue", "retried", len(entries))
	}
}

// Stop stops the retry job.
func (j *AuditRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Audit retry job stopped")
}
