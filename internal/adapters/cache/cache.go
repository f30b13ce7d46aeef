// Package cache holds the single-slot, time-expiring memoization of the
// generated analysis payload. One entry, no per-key eviction: the slot is
// either fresh or treated as absent. Nothing survives a process restart.
package cache

import (
	"sync"
	"time"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// Store is the read/write contract for the payload slot.
type Store interface {
	// Get returns the stored payload and whether it is still fresh.
	Get() (model.PicksPayload, bool)

	// Put overwrites the slot and stamps it with the current time.
	Put(payload model.PicksPayload)
}

// SnapshotCache implements Store with an injected clock so tests can
// control time without real delays.
type SnapshotCache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	stamped time.Time
	payload model.PicksPayload
	filled  bool
}

// New constructs a SnapshotCache. The default TTL is 12 hours.
func New(opts ...Option) *SnapshotCache {
	c := &SnapshotCache{
		ttl: 12 * time.Hour,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the stored payload while now - stamp < TTL.
func (c *SnapshotCache) Get() (model.PicksPayload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filled || c.now().Sub(c.stamped) >= c.ttl {
		return model.PicksPayload{}, false
	}
	return c.payload, true
}

// Put overwrites the slot. A failed generation must never reach here, so
// the slot can only hold a complete payload.
func (c *SnapshotCache) Put(payload model.PicksPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	c.stamped = c.now()
	c.filled = true
}
