package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	model "task-tracker.com/task-tracker/internal/models"
)

type RedisTaskCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewRedisTaskCache(client rueidis.Client, key string, ttl time.Duration) *RedisTaskCache {
	return &RedisTaskCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (c *RedisTaskCache) Get(ctx context.Context) ([]model.Task, error) {
	cmd := c.client.B().Get().Key(c.key).Build()
	result := c.client.Do(ctx, cmd)

	raw, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (c *RedisTaskCache) Set(ctx context.Context, tasks []model.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	cmd := c.client.B().Set().Key(c.key).Value(string(raw)).Ex(c.ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *RedisTaskCache) Invalidate(ctx context.Context) error {
	cmd := c.client.B().Del().Key(c.key).Build()
	return c.client.Do(ctx, cmd).Error()
}
