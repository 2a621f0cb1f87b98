package quota

import (
	"sync"

	"sports-stats-service/internal/domain"
)

// Tracker keeps the most recently observed upstream rate-limit headers.
// It is shared across providers and safe for concurrent use; writes are
// last-writer-wins, which is acceptable because every response carries the
// full current state.
type Tracker struct {
	mu    sync.RWMutex
	quota domain.Quota
}

// NewTracker constructs an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record overwrites the snapshot with the latest observed header values.
func (t *Tracker) Record(remaining, limit int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.quota = domain.Quota{Remaining: remaining, Limit: limit, Observed: true}
}

// Snapshot returns a copy of the last observed quota.
func (t *Tracker) Snapshot() domain.Quota {
	if t == nil {
		return domain.Quota{}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.quota
}
