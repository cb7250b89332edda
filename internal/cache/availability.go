// Package cache implements the Redis-backed availability cache.  The
// slot list for a (date, partySize) pair is expensive enough to compute
// and hot enough during the booking wizard to be worth caching, but it
// must never go stale across a booking: every successful create or
// cancel bumps a per-date version, which is part of the data key, so
// all cached entries for that date become unreachable at once.  The TTL
// only bounds garbage and lost-invalidation staleness.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bayanihan/restaurant-reservation/internal/config"
)

// Availability caches availability responses.  A nil *Availability is
// valid and behaves as a disabled cache, so callers never branch on
// configuration.
type Availability struct {
	rdb *redis.Client
	cfg config.CacheConfig
}

// NewAvailability returns a cache over rdb, or nil when caching is
// disabled or no Redis client is available.
func NewAvailability(rdb *redis.Client, cfg config.CacheConfig) *Availability {
	if rdb == nil || !cfg.Enabled {
		return nil
	}
	return &Availability{rdb: rdb, cfg: cfg}
}

// Get returns the cached slot list for (date, partySize) and whether it
// was present.  The date's version at read time is always returned, hit
// or miss; on a miss the caller passes it back to Set so the entry is
// keyed under the version the data was computed against.  A booking
// landing in between bumps the version, leaving the entry unreachable
// instead of caching stale slots under the new version.
func (c *Availability) Get(ctx context.Context, date string, partySize int) (slots []string, ver string, ok bool) {
	if c == nil {
		return nil, "", false
	}
	ver = c.version(ctx, date)
	raw, err := c.rdb.Get(ctx, c.dataKey(date, partySize, ver)).Bytes()
	if err != nil {
		return nil, ver, false
	}
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, ver, false
	}
	return slots, ver, true
}

// Set stores the slot list for (date, partySize) under ver, the version
// the caller observed at Get time.
func (c *Availability) Set(ctx context.Context, date string, partySize int, ver string, slots []string) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	_ = c.rdb.SetEx(ctx, c.dataKey(date, partySize, ver), raw, c.cfg.TTL).Err()
}

// InvalidateDate makes every cached entry for the date unreachable by
// bumping its version counter.
func (c *Availability) InvalidateDate(ctx context.Context, date string) {
	if c == nil {
		return
	}
	_ = c.rdb.Incr(ctx, c.versionKey(date)).Err()
}

func (c *Availability) versionKey(date string) string {
	return fmt.Sprintf("%s:ver:%s", c.cfg.Prefix, date)
}

func (c *Availability) version(ctx context.Context, date string) string {
	ver, err := c.rdb.Get(ctx, c.versionKey(date)).Result()
	if err != nil {
		return "0"
	}
	return ver
}

func (c *Availability) dataKey(date string, partySize int, ver string) string {
	return fmt.Sprintf("%s:%s:%d:v%s", c.cfg.Prefix, date, partySize, ver)
}
