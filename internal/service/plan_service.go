// FILE: internal/service/plan_service.go
// Plan catalog: public listing and admin maintenance
package service

import (
	"context"
	"strings"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/internal/repository/contract"
	"vendor-marketplace-be/internal/repository/specification"
	"vendor-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type PlanService interface {
	// Public
	ListPlans(ctx context.Context) ([]dto.PlanResponse, error)

	// Admin
	ListAllPlans(ctx context.Context) ([]*dto.AdminPlanResponse, error)
	CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.AdminPlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req *dto.UpdatePlanRequest) (*dto.AdminPlanResponse, error)
	DeactivatePlan(ctx context.Context, id uuid.UUID) error
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      contract.PlanCache
	logger     logger.ILogger
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, cache contract.PlanCache, log logger.ILogger) PlanService {
	return &planService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     log,
	}
}

// ListPlans returns every active plan in display form, cheapest first.
func (s *planService) ListPlans(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, found := s.cache.GetActivePlans(ctx)
	if !found {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		var err error
		plans, err = uow.SubscriptionRepository().FindAllPlans(ctx,
			specification.ActiveOnly{},
			specification.OrderBy{Field: "price"},
		)
		if err != nil {
			return nil, err
		}
		s.cache.SetActivePlans(ctx, plans)
	}

	res := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, toPlanResponse(p))
	}
	return res, nil
}

func (s *planService) ListAllPlans(ctx context.Context) ([]*dto.AdminPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx, specification.OrderBy{Field: "price"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminPlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, toAdminPlanResponse(p))
	}
	return res, nil
}

func (s *planService) CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.AdminPlanResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.InvalidInput("plan name is required")
	}
	if req.Price.IsNegative() {
		return nil, apperror.InvalidInput("price must not be negative")
	}
	if req.BookingLimit < 1 || req.ValidityPeriod < 1 {
		return nil, apperror.InvalidInput("bookingLimit and validityPeriod must be at least 1")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	existing, err := repo.FindOnePlan(ctx, specification.Filter("name", name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("plan name already exists")
	}

	plan := &entity.SubscriptionPlan{
		Name:           name,
		Description:    req.Description,
		Price:          req.Price,
		BookingLimit:   req.BookingLimit,
		ValidityPeriod: req.ValidityPeriod,
		IsActive:       true,
	}
	if err := repo.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("PLAN", "Plan created", map[string]interface{}{
		"plan_id": plan.Id.String(),
		"name":    plan.Name,
	})
	return toAdminPlanResponse(plan), nil
}

func (s *planService) UpdatePlan(ctx context.Context, id uuid.UUID, req *dto.UpdatePlanRequest) (*dto.AdminPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	plan, err := repo.FindOnePlan(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.ErrPlanNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.InvalidInput("plan name is required")
		}
		if name != plan.Name {
			clash, err := repo.FindOnePlan(ctx, specification.Filter("name", name))
			if err != nil {
				return nil, err
			}
			if clash != nil {
				return nil, apperror.Conflict("plan name already exists")
			}
		}
		plan.Name = name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperror.InvalidInput("price must not be negative")
		}
		plan.Price = *req.Price
	}
	if req.BookingLimit != nil {
		if *req.BookingLimit < 1 {
			return nil, apperror.InvalidInput("bookingLimit must be at least 1")
		}
		plan.BookingLimit = *req.BookingLimit
	}
	if req.ValidityPeriod != nil {
		if *req.ValidityPeriod < 1 {
			return nil, apperror.InvalidInput("validityPeriod must be at least 1")
		}
		plan.ValidityPeriod = *req.ValidityPeriod
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := repo.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("PLAN", "Plan updated", map[string]interface{}{
		"plan_id": plan.Id.String(),
	})
	return toAdminPlanResponse(plan), nil
}

// DeactivatePlan hides a plan from the catalog. Rows are never deleted so
// existing subscriptions keep a resolvable plan.
func (s *planService) DeactivatePlan(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	plan, err := repo.FindOnePlan(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if plan == nil {
		return apperror.ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil
	}

	plan.IsActive = false
	if err := repo.UpdatePlan(ctx, plan); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("PLAN", "Plan deactivated", map[string]interface{}{
		"plan_id": plan.Id.String(),
	})
	return nil
}
