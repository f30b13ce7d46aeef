package cache

import (
	"time"
)

// Option applies a configuration option to the SnapshotCache.
type Option func(*SnapshotCache)

// WithTTL sets how long a stored payload stays fresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *SnapshotCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithNowFunc injects the clock. Tests use this to expire the slot
// without waiting.
func WithNowFunc(now func() time.Time) Option {
	return func(c *SnapshotCache) {
		if now != nil {
			c.now = now
		}
	}
}
