package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
)

const statsKey = "stats:overview"

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (*model.Stats, bool, error) {
	b, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var stats model.Stats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *RedisCache) Set(ctx context.Context, stats *model.Stats) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey, b, c.ttl).Err()
}
