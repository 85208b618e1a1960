package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dateLayout = "2006-01-02"

// AvailabilityCache keeps per-room blocked-date sets in Redis with a short
// TTL. Every write path that touches a room's reservations must invalidate
// its entry; the TTL only bounds staleness if an invalidation is missed.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

func blockedDatesKey(roomID int64) string {
	return fmt.Sprintf("availability:room:%d:blocked", roomID)
}

func (c *AvailabilityCache) GetBlockedDates(ctx context.Context, roomID int64) ([]time.Time, bool) {
	raw, err := c.rdb.Get(ctx, blockedDatesKey(roomID)).Result()
	if err != nil {
		return nil, false
	}

	var encoded []string
	if err := json.Unmarshal([]byte(raw), &encoded); err != nil {
		return nil, false
	}

	dates := make([]time.Time, 0, len(encoded))
	for _, s := range encoded {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, false
		}
		dates = append(dates, d)
	}
	return dates, true
}

func (c *AvailabilityCache) SetBlockedDates(ctx context.Context, roomID int64, dates []time.Time) {
	encoded := make([]string, 0, len(dates))
	for _, d := range dates {
		encoded = append(encoded, d.Format(dateLayout))
	}

	raw, err := json.Marshal(encoded)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the source of truth is the DB.
	_ = c.rdb.Set(ctx, blockedDatesKey(roomID), raw, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, roomID int64) {
	_ = c.rdb.Del(ctx, blockedDatesKey(roomID)).Err()
}
