package record

import (
	"sync"
	"time"
)

// IDGenerator issues timestamp-derived record IDs.
//
// IDs are the current Unix time in milliseconds, bumped past the last
// issued value when two records are created within the same millisecond.
// This gives monotonic-enough uniqueness on a single device without
// coordinating with the store.
//
// Thread-safety: all methods are safe for concurrent use.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator creates a generator backed by the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorWithNow creates a generator with an injected clock.
// Used by tests to issue deterministic IDs.
func NewIDGeneratorWithNow(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Next returns the next record ID: the current millisecond timestamp, or
// last+1 when the clock has not advanced past the previous ID.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
