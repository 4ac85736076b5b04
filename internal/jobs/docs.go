// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path deliberately leaves behind.
//
// # Available Jobs
//
// 1. AuditRetryJob - Re-appends audit entries whose initial write failed,
// so a transient history-store outage loses no records.
// 2. AutoAdvanceJob - Sweeps orders parked on automatic edges and advances
// them as the system actor once their preconditions are met.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(auditRetryJob, autoAdvanceJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "*/10 * * * * *", running every ten
// seconds. The sweep exists for correctness, not latency: the request path
// already walks automatic edges inline after each committed transition.
//
// # Error Handling
//
// - The retry job re-enqueues entries that fail again and logs the count.
// - The sweep job treats unmet preconditions and concurrency conflicts as
// expected outcomes; anything else is logged.
package jobs
