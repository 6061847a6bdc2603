package contract

import (
	"context"

	"vendor-marketplace-be/internal/entity"
)

// PlanCache holds the public list of active plans between catalog changes.
type PlanCache interface {
	GetActivePlans(ctx context.Context) ([]*entity.SubscriptionPlan, bool)
	SetActivePlans(ctx context.Context, plans []*entity.SubscriptionPlan)
	Invalidate(ctx context.Context)
}
