package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Analytics event names.
const (
	EventQuizStarted   = "quiz_started"
	EventQuizCompleted = "quiz_completed"
	EventLeadSubmitted = "lead_submitted"
)

// AnalyticsCache handles Redis counters for site analytics
type AnalyticsCache interface {
	IncrEvent(ctx context.Context, event string) error
	IncrMajorRecommended(ctx context.Context, slug string) error
	EventCounts(ctx context.Context) (map[string]int64, error)
	MajorCounts(ctx context.Context) (map[string]int64, error)
}

type analyticsCache struct {
	client *redis.Client
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client) AnalyticsCache {
	return &analyticsCache{client: client}
}

const (
	eventsKey = "analytics:events"
	majorsKey = "analytics:majors"
)

func (c *analyticsCache) IncrEvent(ctx context.Context, event string) error {
	return c.client.HIncrBy(ctx, eventsKey, event, 1).Err()
}

func (c *analyticsCache) IncrMajorRecommended(ctx context.Context, slug string) error {
	return c.client.HIncrBy(ctx, majorsKey, slug, 1).Err()
}

func (c *analyticsCache) EventCounts(ctx context.Context) (map[string]int64, error) {
	return c.counts(ctx, eventsKey)
}

func (c *analyticsCache) MajorCounts(ctx context.Context) (map[string]int64, error) {
	return c.counts(ctx, majorsKey)
}

func (c *analyticsCache) counts(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		counts[field] = n
	}
	return counts, nil
}
