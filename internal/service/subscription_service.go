// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/internal/pkg/storage"
	"vendor-marketplace-be/internal/repository/scope"
	"vendor-marketplace-be/internal/repository/specification"
	"vendor-marketplace-be/internal/repository/unitofwork"
	"vendor-marketplace-be/pkg/events"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ISubscriptionService interface {
	// Vendor
	Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	RecordPaymentProof(ctx context.Context, req *dto.RecordPaymentProofRequest) (*dto.SubscriptionResponse, error)
	GetVendorSubscription(ctx context.Context, vendorId uuid.UUID) (*dto.SubscriptionResponse, error)
	DecrementQuota(ctx context.Context, vendorId uuid.UUID) (*dto.QuotaResponse, error)

	// Admin
	Verify(ctx context.Context, subscriptionId uuid.UUID, paymentStatus string, adminId uuid.UUID) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, filter dto.SubscriptionListFilter) (*dto.PaginatedResponse[dto.SubscriptionListItem], error)
	GetSubscription(ctx context.Context, id uuid.UUID) (*dto.SubscriptionDetailResponse, error)

	// Background
	ExpireOverdue(ctx context.Context) (int, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	proofStore storage.ProofStore
	publisher  IEventPublisher
	logger     logger.ILogger
	now        func() time.Time
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	proofStore storage.ProofStore,
	publisher IEventPublisher,
	log logger.ILogger,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		proofStore: proofStore,
		publisher:  publisher,
		logger:     log,
		now:        time.Now,
	}
}

func (s *subscriptionService) Create(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	now := s.now()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	plan, err := repo.FindOnePlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperror.ErrPlanNotFound
	}

	if len(req.ServiceIds) > entity.MaxSelectedServices {
		return nil, apperror.InvalidInput(fmt.Sprintf("at most %d services can be selected", entity.MaxSelectedServices))
	}
	serviceIds := uniqueIDs(req.ServiceIds)
	if len(serviceIds) < entity.MinSelectedServices {
		return nil, apperror.InvalidInput("at least one service must be selected")
	}
	if len(serviceIds) > entity.MaxSelectedServices {
		return nil, apperror.InvalidInput(fmt.Sprintf("at most %d services can be selected", entity.MaxSelectedServices))
	}
	found, err := uow.ServiceRepository().Count(ctx, specification.ByIDs{IDs: serviceIds})
	if err != nil {
		return nil, err
	}
	if found != int64(len(serviceIds)) {
		return nil, apperror.InvalidInput("one or more selected services do not exist")
	}

	open, err := repo.FindOneSubscription(ctx, specification.ByVendor{VendorID: req.VendorId}, specification.OpenSubscription{})
	if err != nil {
		return nil, err
	}
	if open != nil {
		if !open.IsOverdue(now) {
			return nil, apperror.ErrOpenSubscription
		}
		if err := s.expire(ctx, uow, open, now); err != nil {
			return nil, err
		}
	}

	proofPath, err := s.proofStore.SavePaymentProof(ctx, req.PaymentProof)
	if err != nil {
		return nil, err
	}

	sub := &entity.VendorSubscription{
		VendorId:         req.VendorId,
		PlanId:           plan.Id,
		PlanType:         entity.PlanTypeFromName(plan.Name),
		Price:            plan.Price,
		StartDate:        now,
		EndDate:          now.AddDate(0, 0, plan.ValidityPeriod),
		Status:           entity.SubscriptionStatusPending,
		PaymentStatus:    entity.PaymentStatusPending,
		PaymentProof:     proofPath,
		TransactionId:    strings.TrimSpace(req.TransactionId),
		SelectedServices: serviceIds,
		BookingsLeft:     0,
		Features:         plan.FeatureBullets(),
	}
	if err := repo.CreateSubscription(ctx, sub); err != nil {
		if delErr := s.proofStore.Delete(ctx, proofPath); delErr != nil {
			s.logger.Warn("SUBSCRIPTION", "Failed to remove orphaned payment proof", map[string]interface{}{
				"path":  proofPath,
				"error": delErr.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("SUBSCRIPTION", "Subscription created", map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"vendor_id":       sub.VendorId.String(),
		"plan_id":         sub.PlanId.String(),
	})
	s.publish(ctx, events.SubscriptionCreated, sub)

	return toSubscriptionResponse(sub), nil
}

func (s *subscriptionService) RecordPaymentProof(ctx context.Context, req *dto.RecordPaymentProofRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	sub, err := repo.FindOneSubscription(ctx, specification.ByID{ID: req.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrSubscriptionNotFound
	}
	if sub.VendorId != req.VendorId {
		return nil, apperror.ErrNotSubscriptionOwner
	}

	proofPath, err := s.proofStore.SavePaymentProof(ctx, req.PaymentProof)
	if err != nil {
		return nil, err
	}

	previousProof := sub.PaymentProof
	sub.PaymentProof = proofPath
	sub.TransactionId = strings.TrimSpace(req.TransactionId)
	sub.PaymentStatus = entity.PaymentStatusPending
	if err := repo.UpdateSubscription(ctx, sub); err != nil {
		_ = s.proofStore.Delete(ctx, proofPath)
		return nil, err
	}
	if previousProof != "" && previousProof != proofPath {
		if err := s.proofStore.Delete(ctx, previousProof); err != nil {
			s.logger.Warn("SUBSCRIPTION", "Failed to remove replaced payment proof", map[string]interface{}{
				"path":  previousProof,
				"error": err.Error(),
			})
		}
	}

	s.logger.Info("SUBSCRIPTION", "Payment proof updated", map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"vendor_id":       sub.VendorId.String(),
	})
	s.publish(ctx, events.SubscriptionPaymentProofUpdated, sub)

	return toSubscriptionResponse(sub), nil
}

// Verify records the admin's payment decision. paid activates the subscription and
// sets bookingsLeft to the plan's booking limit, overriding any earlier value. failed
// cancels it and pending only resets the payment status.
func (s *subscriptionService) Verify(ctx context.Context, subscriptionId uuid.UUID, paymentStatus string, adminId uuid.UUID) (*dto.SubscriptionResponse, error) {
	paymentStatus = strings.ToLower(strings.TrimSpace(paymentStatus))
	if !entity.IsValidPaymentStatus(paymentStatus) {
		return nil, apperror.InvalidInput("paymentStatus must be one of pending, paid, failed")
	}

	now := s.now()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	sub, err := repo.FindOneSubscription(ctx, specification.ByID{ID: subscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrSubscriptionNotFound
	}

	var eventType string
	switch entity.PaymentStatus(paymentStatus) {
	case entity.PaymentStatusPaid:
		limit, err := s.bookingLimitFor(ctx, uow, sub)
		if err != nil {
			return nil, err
		}
		// re-verifying an active subscription resets the allowance without a second activation event
		if sub.Status != entity.SubscriptionStatusActive || sub.PaymentStatus != entity.PaymentStatusPaid {
			eventType = events.SubscriptionActivated
		}
		sub.Status = entity.SubscriptionStatusActive
		sub.BookingsLeft = limit
		s.stampVerification(sub, adminId, now)
	case entity.PaymentStatusFailed:
		sub.Status = entity.SubscriptionStatusCancelled
		s.stampVerification(sub, adminId, now)
		eventType = events.SubscriptionRejected
	}
	sub.PaymentStatus = entity.PaymentStatus(paymentStatus)

	if err := repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("SUBSCRIPTION", "Payment verified", map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"payment_status":  paymentStatus,
		"status":          string(sub.Status),
		"admin_id":        adminId.String(),
	})
	if eventType != "" {
		s.publish(ctx, eventType, sub)
	}

	return toSubscriptionResponse(sub), nil
}

func (s *subscriptionService) stampVerification(sub *entity.VendorSubscription, adminId uuid.UUID, now time.Time) {
	verifiedAt := now
	verifiedBy := adminId
	sub.VerifiedAt = &verifiedAt
	sub.VerifiedBy = &verifiedBy
}

func (s *subscriptionService) bookingLimitFor(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.VendorSubscription) (int, error) {
	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return 0, err
	}
	if plan == nil {
		s.logger.Warn("SUBSCRIPTION", "Plan missing at activation, using fallback allowance", map[string]interface{}{
			"subscription_id": sub.Id.String(),
			"plan_type":       string(sub.PlanType),
		})
		return entity.FallbackBookingLimit(sub.PlanType), nil
	}
	return plan.BookingLimit, nil
}

func (s *subscriptionService) DecrementQuota(ctx context.Context, vendorId uuid.UUID) (*dto.QuotaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().ConsumeBooking(ctx, vendorId, s.now())
	if err != nil {
		if errors.Is(err, apperror.ErrQuotaExhausted) {
			s.logger.Warn("SUBSCRIPTION", "Booking quota exhausted", map[string]interface{}{
				"vendor_id": vendorId.String(),
			})
		}
		return nil, err
	}

	s.publish(ctx, events.BookingQuotaConsumed, sub)
	return &dto.QuotaResponse{SubscriptionId: sub.Id, BookingsLeft: sub.BookingsLeft}, nil
}

// GetVendorSubscription returns the vendor's pending or active subscription.
// An active one whose end date has passed is expired on the spot.
func (s *subscriptionService) GetVendorSubscription(ctx context.Context, vendorId uuid.UUID) (*dto.SubscriptionResponse, error) {
	now := s.now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.ByVendor{VendorID: vendorId},
		specification.OpenSubscription{},
		specification.ScopeFunc(scope.OrderByCreatedDesc),
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrSubscriptionNotFound
	}
	if sub.IsOverdue(now) {
		if err := s.expire(ctx, uow, sub, now); err != nil {
			return nil, err
		}
		return nil, apperror.ErrSubscriptionNotFound
	}

	return toSubscriptionResponse(sub), nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, filter dto.SubscriptionListFilter) (*dto.PaginatedResponse[dto.SubscriptionListItem], error) {
	specs := []specification.Specification{}
	if filter.PlanId != nil {
		specs = append(specs, specification.ByPlan{PlanID: *filter.PlanId})
	}
	if filter.Status != "" {
		if !entity.IsValidSubscriptionStatus(filter.Status) {
			return nil, apperror.InvalidInput("invalid status filter")
		}
		specs = append(specs, specification.StatusIn{Statuses: []string{filter.Status}})
	}
	if filter.PaymentStatus != "" {
		if !entity.IsValidPaymentStatus(filter.PaymentStatus) {
			return nil, apperror.InvalidInput("invalid paymentStatus filter")
		}
		specs = append(specs, specification.PaymentStatusIs{Status: filter.PaymentStatus})
	}
	if strings.TrimSpace(filter.Search) != "" {
		specs = append(specs, specification.VendorSearch{Query: filter.Search})
	}

	page, limit := normalizePage(filter.Page, filter.Limit)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	total, err := repo.CountSubscriptions(ctx, specs...)
	if err != nil {
		return nil, err
	}

	pageSpecs := append(append([]specification.Specification{}, specs...),
		specification.ScopeFunc(scope.OrderByCreatedDesc),
		specification.ScopeFunc(scope.Paginate(page, limit)),
	)
	subs, err := repo.FindAllSubscriptions(ctx, pageSpecs...)
	if err != nil {
		return nil, err
	}

	vendorIds := make([]uuid.UUID, 0, len(subs))
	planIds := make([]uuid.UUID, 0, len(subs))
	for _, sub := range subs {
		vendorIds = append(vendorIds, sub.VendorId)
		planIds = append(planIds, sub.PlanId)
	}

	vendors := map[uuid.UUID]*entity.User{}
	plans := map[uuid.UUID]*entity.SubscriptionPlan{}
	if len(subs) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: uniqueIDs(vendorIds)})
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			vendors[u.Id] = u
		}
		planList, err := repo.FindAllPlans(ctx, specification.ByIDs{IDs: uniqueIDs(planIds)})
		if err != nil {
			return nil, err
		}
		for _, p := range planList {
			plans[p.Id] = p
		}
	}

	items := make([]dto.SubscriptionListItem, 0, len(subs))
	for _, sub := range subs {
		item := dto.SubscriptionListItem{
			SubscriptionResponse: *toSubscriptionResponse(sub),
			Vendor:               toVendorSummary(vendors[sub.VendorId]),
		}
		if p, ok := plans[sub.PlanId]; ok {
			item.PlanName = p.Name
		}
		items = append(items, item)
	}

	return &dto.PaginatedResponse[dto.SubscriptionListItem]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*dto.SubscriptionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubscriptionRepository()

	sub, err := repo.FindOneSubscription(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.ErrSubscriptionNotFound
	}

	vendor, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: sub.VendorId})
	if err != nil {
		return nil, err
	}

	res := &dto.SubscriptionDetailResponse{
		Subscription: *toSubscriptionResponse(sub),
		Vendor:       toVendorSummary(vendor),
		Services:     []dto.ServiceResponse{},
	}

	plan, err := repo.FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan != nil {
		res.Plan = toAdminPlanResponse(plan)
	}

	if len(sub.SelectedServices) > 0 {
		services, err := uow.ServiceRepository().FindAll(ctx, specification.ByIDs{IDs: sub.SelectedServices})
		if err != nil {
			return nil, err
		}
		for _, svc := range services {
			res.Services = append(res.Services, toServiceResponse(svc))
		}
	}

	return res, nil
}

// ExpireOverdue is the periodic reconciliation pass run by the expiry worker.
func (s *subscriptionService) ExpireOverdue(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	expired, err := uow.SubscriptionRepository().ExpireOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}

	for _, sub := range expired {
		s.publish(ctx, events.SubscriptionExpired, sub)
	}
	if len(expired) > 0 {
		s.logger.Info("EXPIRY", "Expired overdue subscriptions", map[string]interface{}{
			"count": len(expired),
		})
	}
	return len(expired), nil
}

func (s *subscriptionService) expire(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.VendorSubscription, now time.Time) error {
	sub.Status = entity.SubscriptionStatusExpired
	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return err
	}
	s.logger.Info("EXPIRY", "Subscription expired on access", map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"vendor_id":       sub.VendorId.String(),
		"end_date":        sub.EndDate.Format(time.RFC3339),
	})
	s.publish(ctx, events.SubscriptionExpired, sub)
	return nil
}

func (s *subscriptionService) publish(ctx context.Context, eventType string, sub *entity.VendorSubscription) {
	s.publisher.Publish(ctx, events.New(eventType, subscriptionPayload(sub)))
}

func subscriptionPayload(sub *entity.VendorSubscription) map[string]interface{} {
	return map[string]interface{}{
		"subscriptionId": sub.Id.String(),
		"vendorId":       sub.VendorId.String(),
		"planId":         sub.PlanId.String(),
		"planType":       string(sub.PlanType),
		"status":         string(sub.Status),
		"paymentStatus":  string(sub.PaymentStatus),
		"bookingsLeft":   sub.BookingsLeft,
		"endDate":        sub.EndDate.Format(time.RFC3339),
	}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
