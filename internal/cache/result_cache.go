package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// ResultCache handles Redis caching of rendered quiz results keyed by the
// answer-set content hash, so identical answer sets served by any instance
// skip recomputation
type ResultCache interface {
	Get(ctx context.Context, key string, locale model.Locale) (*model.QuizResult, error)
	Set(ctx context.Context, key string, locale model.Locale, result *model.QuizResult) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
		ttl:    1 * time.Hour,
	}
}

func (c *resultCache) key(key string, locale model.Locale) string {
	return "quizresult:" + string(locale) + ":" + key
}

func (c *resultCache) Get(ctx context.Context, key string, locale model.Locale) (*model.QuizResult, error) {
	data, err := c.client.Get(ctx, c.key(key, locale)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.QuizResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *resultCache) Set(ctx context.Context, key string, locale model.Locale, result *model.QuizResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key, locale), data, c.ttl).Err()
}
