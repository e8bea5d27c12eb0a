// Package budget enforces an optional cap on the total number of bytes held
// in live aligned blocks.
//
// Allocation paths must never block, so the controller only offers a
// non-blocking TryAcquire. Callers that hit the cap fail the allocation
// instead of waiting for memory to be released.
package budget

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Controller tracks reserved bytes against a fixed limit.
type Controller struct {
	limit int64

	sem  *semaphore.Weighted // nil if unlimited
	used atomic.Int64
}

// NewController creates a controller enforcing limitBytes.
// If limitBytes is 0 or negative, no hard limit is enforced (only tracking).
func NewController(limitBytes int64) *Controller {
	c := &Controller{limit: limitBytes}
	if limitBytes > 0 {
		c.sem = semaphore.NewWeighted(limitBytes)
	}
	return c
}

// TryAcquire attempts to reserve bytes without blocking.
// Returns true if acquired, false if the limit would be exceeded.
func (c *Controller) TryAcquire(bytes int64) bool {
	if c == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}

	if c.sem != nil {
		if !c.sem.TryAcquire(bytes) {
			return false
		}
	}

	c.used.Add(bytes)
	return true
}

// Release returns reserved bytes to the budget.
func (c *Controller) Release(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.sem != nil {
		c.sem.Release(bytes)
	}
	c.used.Add(-bytes)
}

// Used returns the number of bytes currently reserved.
func (c *Controller) Used() int64 {
	if c == nil {
		return 0
	}
	return c.used.Load()
}

// Limit returns the configured limit in bytes, or 0 when unlimited.
func (c *Controller) Limit() int64 {
	if c == nil || c.limit <= 0 {
		return 0
	}
	return c.limit
}
