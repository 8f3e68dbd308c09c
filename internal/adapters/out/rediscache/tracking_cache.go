// Package rediscache is a read-through cache for tracking projections backed by
// Redis. Entries expire after a TTL and are dropped by command handlers after
// every committed transition.
//
// Each order has two keys: the projection and a generation counter. Invalidate
// bumps the counter and deletes the projection in one script; Set writes only
// while the counter still holds the value the reader saw before loading.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const resource = "tracking cache"

// generationTTL outlives any read in flight; a counter that expired mid-read
// would let a stale Set through.
const generationTTL = 24 * time.Hour

var setIfGeneration = redis.NewScript(`
local current = redis.call("GET", KEYS[2])
if (current or "0") ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

var invalidate = redis.NewScript(`
redis.call("INCR", KEYS[2])
redis.call("PEXPIRE", KEYS[2], ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`)

var _ ports.TrackingCache = (*TrackingCache)(nil)

// TrackingCache implements ports.TrackingCache.
type TrackingCache struct {
	client      redis.Cmdable
	serviceName string
	ttl         time.Duration
}

// NewTrackingCache stores projections under "<serviceName>:tracking:<orderId>".
func NewTrackingCache(client redis.Cmdable, serviceName string, ttl time.Duration) *TrackingCache {
	return &TrackingCache{client: client, serviceName: serviceName, ttl: ttl}
}

// NewClient creates a Redis client for addr.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (c *TrackingCache) Get(ctx context.Context, orderID kernel.UUID) (tracking.Projection, bool, error) {
	raw, err := c.client.Get(ctx, c.key(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return tracking.Projection{}, false, nil
	}
	if err != nil {
		return tracking.Projection{}, false, errs.NewUnavailableError(resource, err)
	}

	var dto projectionJSON
	if err := json.Unmarshal(raw, &dto); err != nil {
		return tracking.Projection{}, false, fmt.Errorf("decode cached projection: %w", err)
	}

	p, err := dto.toProjection()
	if err != nil {
		return tracking.Projection{}, false, fmt.Errorf("decode cached projection: %w", err)
	}
	return p, true, nil
}

func (c *TrackingCache) Generation(ctx context.Context, orderID kernel.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, c.generationKey(orderID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.NewUnavailableError(resource, err)
	}
	return generation, nil
}

func (c *TrackingCache) Set(ctx context.Context, p tracking.Projection, generation int64) (bool, error) {
	raw, err := json.Marshal(fromProjection(p))
	if err != nil {
		return false, err
	}

	keys := []string{c.key(p.OrderID), c.generationKey(p.OrderID)}
	stored, err := setIfGeneration.Run(ctx, c.client, keys,
		strconv.FormatInt(generation, 10), string(raw), c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, errs.NewUnavailableError(resource, err)
	}
	return stored == 1, nil
}

func (c *TrackingCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	keys := []string{c.key(orderID), c.generationKey(orderID)}
	if err := invalidate.Run(ctx, c.client, keys, generationTTL.Milliseconds()).Err(); err != nil {
		return errs.NewUnavailableError(resource, err)
	}
	return nil
}

func (c *TrackingCache) key(orderID kernel.UUID) string {
	return fmt.Sprintf("%s:tracking:%s", c.serviceName, orderID.String())
}

func (c *TrackingCache) generationKey(orderID kernel.UUID) string {
	return c.key(orderID) + ":gen"
}
