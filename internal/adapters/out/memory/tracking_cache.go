package memory

import (
	"context"
	"sync"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"
)

var _ ports.TrackingCache = (*TrackingCache)(nil)

// TrackingCache is an in-process projection cache with the same generation
// rules as the Redis cache. Entries never expire.
type TrackingCache struct {
	mu          sync.Mutex
	projections map[kernel.UUID]tracking.Projection
	generations map[kernel.UUID]int64
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		projections: make(map[kernel.UUID]tracking.Projection),
		generations: make(map[kernel.UUID]int64),
	}
}

func (c *TrackingCache) Get(_ context.Context, orderID kernel.UUID) (tracking.Projection, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.projections[orderID]
	return p, ok, nil
}

func (c *TrackingCache) Generation(_ context.Context, orderID kernel.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[orderID], nil
}

func (c *TrackingCache) Set(_ context.Context, p tracking.Projection, generation int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[p.OrderID] != generation {
		return false, nil
	}
	c.projections[p.OrderID] = p
	return true, nil
}

func (c *TrackingCache) Invalidate(_ context.Context, orderID kernel.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[orderID]++
	delete(c.projections, orderID)
	return nil
}
