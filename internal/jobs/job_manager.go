package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	auditRetryJob  *AuditRetryJob
	autoAdvanceJob *AutoAdvanceJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(auditRetryJob *AuditRetryJob, autoAdvanceJob *AutoAdvanceJob) *JobManager {
	return &JobManager{
		auditRetryJob:  auditRetryJob,
		autoAdvanceJob: autoAdvanceJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auditRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start audit retry job: %w", err)
	}

	if err := jm.autoAdvanceJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.auditRetryJob.Stop()
		return fmt.Errorf("failed to start auto-advance job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoAdvanceJob.Stop()
	jm.auditRetryJob.Stop()
}
