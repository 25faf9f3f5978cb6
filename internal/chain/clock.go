// Package chain provides the block-height clock every lock expiry is measured against.
//
// Block height is the only time source for lock state. It is monotonic and
// advances in whole blocks, either on a fixed interval (Run) or on demand
// (Mine / Advance), so expiry checks never depend on wall-clock drift.
package chain

import (
	"context"
	"sync"
	"time"
)

// Clock is a monotonic block-height counter. It is safe for concurrent use.
type Clock struct {
	mu     sync.RWMutex
	height uint64
}

// NewClock returns a clock positioned at the given height.
func NewClock(height uint64) *Clock {
	return &Clock{height: height}
}

// Now returns the current block height.
func (c *Clock) Now() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// Advance produces n blocks and returns the new height.
func (c *Clock) Advance(n uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += n
	return c.height
}

// Mine produces a single block.
func (c *Clock) Mine() uint64 {
	return c.Advance(1)
}

// Run mines one block per interval until ctx is cancelled.
// onBlock, when non-nil, observes each new height.
func (c *Clock) Run(ctx context.Context, interval time.Duration, onBlock func(height uint64)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h := c.Mine()
			if onBlock != nil {
				onBlock(h)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
