package contract

import (
	"context"
	"time"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	// Plans
	CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error
	UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)

	// Vendor subscriptions
	CreateSubscription(ctx context.Context, subscription *entity.VendorSubscription) error
	UpdateSubscription(ctx context.Context, subscription *entity.VendorSubscription) error
	FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.VendorSubscription, error)
	FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.VendorSubscription, error)
	CountSubscriptions(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ConsumeBooking atomically takes one booking from the vendor's active,
	// unexpired subscription and returns the updated row. It fails with
	// apperror.ErrNoActiveSubscription or apperror.ErrQuotaExhausted.
	ConsumeBooking(ctx context.Context, vendorId uuid.UUID, now time.Time) (*entity.VendorSubscription, error)

	// ExpireOverdue marks every active subscription with end_date <= now as
	// expired and returns the rows it changed.
	ExpireOverdue(ctx context.Context, now time.Time) ([]*entity.VendorSubscription, error)
}
