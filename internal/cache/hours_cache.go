package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/rueidis"

	"chronos.team/chronos/internal/metrics"
)

const keyPrefix = "chronos:project_hours:"

// HoursCache caches per-project aggregate hours in redis. A nil client
// disables caching; every lookup is then a miss and writes are no-ops.
type HoursCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewHoursCache(client rueidis.Client, ttl time.Duration) *HoursCache {
	return &HoursCache{client: client, ttl: ttl}
}

func (c *HoursCache) Get(ctx context.Context, projectID string) (float64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}

	cmd := c.client.B().Get().Key(keyPrefix + projectID).Build()
	result := c.client.Do(ctx, cmd)
	if err := result.Error(); err != nil {
		metrics.IncrementCacheLookup("miss")
		return 0, false
	}

	raw, err := result.ToString()
	if err != nil {
		metrics.IncrementCacheLookup("miss")
		return 0, false
	}

	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		metrics.IncrementCacheLookup("miss")
		return 0, false
	}

	metrics.IncrementCacheLookup("hit")
	return hours, true
}

func (c *HoursCache) Set(ctx context.Context, projectID string, hours float64) {
	if c == nil || c.client == nil {
		return
	}

	cmd := c.client.B().Set().
		Key(keyPrefix + projectID).
		Value(strconv.FormatFloat(hours, 'f', -1, 64)).
		Ex(c.ttl).
		Build()
	_ = c.client.Do(ctx, cmd).Error()
}

// Invalidate drops the cached total after any write touching the project's
// tasks.
func (c *HoursCache) Invalidate(ctx context.Context, projectID string) {
	if c == nil || c.client == nil || projectID == "" {
		return
	}

	cmd := c.client.B().Del().Key(keyPrefix + projectID).Build()
	_ = c.client.Do(ctx, cmd).Error()
}
