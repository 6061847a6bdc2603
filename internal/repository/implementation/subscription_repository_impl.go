package implementation

import (
	"context"
	"errors"
	"time"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/mapper"
	"vendor-marketplace-be/internal/model"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/repository/contract"
	"vendor-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Plan Implementation

func (r *SubscriptionRepositoryImpl) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, "plan name already exists")
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err, "plan name already exists")
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	var m model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	var models []*model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SubscriptionPlan, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PlanToEntity(m)
	}
	return entities, nil
}

// Subscription Implementation

func (r *SubscriptionRepositoryImpl) CreateSubscription(ctx context.Context, subscription *entity.VendorSubscription) error {
	m := r.mapper.SubscriptionToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, apperror.ErrOpenSubscription.Message)
	}
	*subscription = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateSubscription(ctx context.Context, subscription *entity.VendorSubscription) error {
	m := r.mapper.SubscriptionToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err, apperror.ErrOpenSubscription.Message)
	}
	*subscription = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.VendorSubscription, error) {
	var m model.VendorSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubscriptionToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.VendorSubscription, error) {
	var models []*model.VendorSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.VendorSubscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SubscriptionToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CountSubscriptions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VendorSubscription{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Quota

func (r *SubscriptionRepositoryImpl) ConsumeBooking(ctx context.Context, vendorId uuid.UUID, now time.Time) (*entity.VendorSubscription, error) {
	result := r.db.WithContext(ctx).Model(&model.VendorSubscription{}).
		Where("vendor_id = ? AND status = ? AND bookings_left > 0 AND end_date > ?",
			vendorId, string(entity.SubscriptionStatusActive), now).
		Updates(map[string]interface{}{
			"bookings_left": gorm.Expr("bookings_left - 1"),
			"updated_at":    now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	var m model.VendorSubscription
	err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ? AND end_date > ?", vendorId, string(entity.SubscriptionStatusActive), now).
		First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if result.RowsAffected == 0 {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNoActiveSubscription
		}
		return nil, apperror.ErrQuotaExhausted
	}
	if err != nil {
		// subscription left the active state right after the decrement
		return nil, apperror.ErrNoActiveSubscription
	}

	return r.mapper.SubscriptionToEntity(&m), nil
}

// ExpireOverdue flips every overdue active subscription to expired in one
// statement and returns only the rows that statement actually changed.
func (r *SubscriptionRepositoryImpl) ExpireOverdue(ctx context.Context, now time.Time) ([]*entity.VendorSubscription, error) {
	var models []*model.VendorSubscription
	query := r.applySpecifications(
		r.db.WithContext(ctx).Model(&models).Clauses(clause.Returning{}),
		specification.Overdue{Now: now},
	)
	err := query.Updates(map[string]interface{}{
		"status":     string(entity.SubscriptionStatusExpired),
		"updated_at": now,
	}).Error
	if err != nil {
		return nil, err
	}

	expired := make([]*entity.VendorSubscription, 0, len(models))
	for _, m := range models {
		expired = append(expired, r.mapper.SubscriptionToEntity(m))
	}
	return expired, nil
}
