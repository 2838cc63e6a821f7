package cache

import (
	"context"
	"encoding/json"
	"errors"

	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/redis/go-redis/v9"
)

const discountKeyPrefix = "discount:"

var (
	_ usecase.DiscountCache = (*RedisDiscountCache)(nil)
	_ usecase.DiscountCache = (*NoopDiscountCache)(nil)
)

// RedisDiscountCache keeps discount rules hot for the checkout path. Entries
// carry a TTL so a rule edited outside this process is never served stale
// beyond the window.
type RedisDiscountCache struct {
	client *redis.Client
	cfg    config.RedisConfig
}

func NewRedisDiscountCache(client *redis.Client, cfg config.RedisConfig) *RedisDiscountCache {
	return &RedisDiscountCache{client: client, cfg: cfg}
}

func discountKey(merchantCode, code string) string {
	return discountKeyPrefix + merchantCode + ":" + code
}

// Get returns (nil, nil) on a miss.
func (c *RedisDiscountCache) Get(ctx context.Context, merchantCode, code string) (*readmodel.DiscountRM, error) {
	data, err := c.client.Get(ctx, discountKey(merchantCode, code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read discount from cache")
	}

	var rm readmodel.DiscountRM
	if err := json.Unmarshal(data, &rm); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached discount")
	}
	return &rm, nil
}

func (c *RedisDiscountCache) Set(ctx context.Context, merchantCode, code string, rule *readmodel.DiscountRM) error {
	data, err := json.Marshal(rule)
	if err != nil {
		return errs.Wrap(err, "failed to encode discount for cache")
	}

	if err := c.client.Set(ctx, discountKey(merchantCode, code), data, c.cfg.DiscountTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to write discount to cache")
	}
	return nil
}

func (c *RedisDiscountCache) Invalidate(ctx context.Context, merchantCode, code string) error {
	if err := c.client.Del(ctx, discountKey(merchantCode, code)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate cached discount")
	}
	return nil
}

// NoopDiscountCache is wired when Redis is disabled; every read is a miss.
type NoopDiscountCache struct{}

func NewNoopDiscountCache() *NoopDiscountCache {
	return &NoopDiscountCache{}
}

func (NoopDiscountCache) Get(context.Context, string, string) (*readmodel.DiscountRM, error) {
	return nil, nil
}

func (NoopDiscountCache) Set(context.Context, string, string, *readmodel.DiscountRM) error {
	return nil
}

func (NoopDiscountCache) Invalidate(context.Context, string, string) error {
	return nil
}
