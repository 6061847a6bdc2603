package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vendor-marketplace-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

const activePlansKey = "marketplace:plans:active"

// RedisPlanCache shares the active plan list across API replicas.
type RedisPlanCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPlanCache(rdb *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient parses url (redis://...) or falls back to treating it as host:port.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *RedisPlanCache) GetActivePlans(ctx context.Context) ([]*entity.SubscriptionPlan, bool) {
	raw, err := c.rdb.Get(ctx, activePlansKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] plan cache read failed: %v", err)
		}
		return nil, false
	}
	var plans []*entity.SubscriptionPlan
	if err := json.Unmarshal(raw, &plans); err != nil {
		return nil, false
	}
	return plans, true
}

func (c *RedisPlanCache) SetActivePlans(ctx context.Context, plans []*entity.SubscriptionPlan) {
	raw, err := json.Marshal(plans)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, activePlansKey, raw, c.ttl).Err(); err != nil {
		log.Printf("[WARN] plan cache write failed: %v", err)
	}
}

func (c *RedisPlanCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, activePlansKey).Err(); err != nil {
		log.Printf("[WARN] plan cache invalidate failed: %v", err)
	}
}
