package ports

import "medlogistics/internal/core/domain/model/audit"

// AuditQueue buffers audit entries whose initial append failed. The retry job
// drains it periodically, so a transient storage outage loses no history.
type AuditQueue interface {
	// Enqueue adds a failed entry for a later retry attempt.
	Enqueue(entry *audit.Entry)

	// Drain removes and returns every buffered entry. Entries that fail again
	// are re-enqueued by the caller.
	Drain() []*audit.Entry

	// Len reports the number of buffered entries.
	Len() int
}
