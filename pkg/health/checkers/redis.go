package checkers

import (
	"context"
	"time"

	"github.com/ricardossantis/nestTasksManager/pkg/cache"
)

type RedisChecker struct {
	cache *cache.Cache
}

func NewRedisChecker(c *cache.Cache) *RedisChecker {
	return &RedisChecker{cache: c}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.cache.Ping(ctx)
}
