// Package memqueue buffers audit entries whose initial append failed. The
// buffer is in-process and unbounded; entries survive a storage outage but
// not a process restart, which is the accepted trade-off for keeping the
// status commit independent of the audit store.
package memqueue

import (
	"sync"

	"medlogistics/internal/core/domain/model/audit"
)

// AuditQueue is a concurrency-safe FIFO of audit entries awaiting a retry.
type AuditQueue struct {
	mu      sync.Mutex
	entries []*audit.Entry
}

// NewAuditQueue creates an empty queue.
func NewAuditQueue() *AuditQueue {
	return &AuditQueue{}
}

// Enqueue adds a failed entry for a later retry attempt.
func (q *AuditQueue) Enqueue(entry *audit.Entry) {
	if entry == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, entry)
}

// Drain removes and returns every buffered entry in arrival order.
func (q *AuditQueue) Drain() []*audit.Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries := q.entries
	q.entries = nil
	return entries
}

// Len reports the number of buffered entries.
func (q *AuditQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
