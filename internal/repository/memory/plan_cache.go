package memory

import (
	"context"
	"time"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const activePlansKey = "plans:active"

type PlanCache struct {
	cache *cache.Cache
}

func NewPlanCache(ttl time.Duration) contract.PlanCache {
	return &PlanCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *PlanCache) GetActivePlans(ctx context.Context) ([]*entity.SubscriptionPlan, bool) {
	if x, found := c.cache.Get(activePlansKey); found {
		return x.([]*entity.SubscriptionPlan), true
	}
	return nil, false
}

func (c *PlanCache) SetActivePlans(ctx context.Context, plans []*entity.SubscriptionPlan) {
	c.cache.Set(activePlansKey, plans, cache.DefaultExpiration)
}

func (c *PlanCache) Invalidate(ctx context.Context) {
	c.cache.Delete(activePlansKey)
}
