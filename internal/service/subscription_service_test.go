package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/pkg/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type subscriptionFixture struct {
	svc       *subscriptionService
	uow       *mockUnitOfWork
	proofs    *mockProofStore
	publisher *recordingPublisher
}

func newSubscriptionFixture() *subscriptionFixture {
	uow := newMockUnitOfWork()
	proofs := &mockProofStore{}
	publisher := &recordingPublisher{}
	svc := NewSubscriptionService(&mockFactory{uow: uow}, proofs, publisher, logger.NewNopLogger()).(*subscriptionService)
	svc.now = func() time.Time { return fixedNow }
	return &subscriptionFixture{svc: svc, uow: uow, proofs: proofs, publisher: publisher}
}

func basicPlan() *entity.SubscriptionPlan {
	return &entity.SubscriptionPlan{
		Id:             uuid.New(),
		Name:           "Basic Plan",
		Price:          decimal.NewFromInt(99000),
		BookingLimit:   10,
		ValidityPeriod: 30,
		IsActive:       true,
	}
}

func createRequest(plan *entity.SubscriptionPlan, serviceIds ...uuid.UUID) *dto.CreateSubscriptionRequest {
	return &dto.CreateSubscriptionRequest{
		VendorId:      uuid.New(),
		PlanId:        plan.Id,
		ServiceIds:    serviceIds,
		TransactionId: " TRX-1 ",
		PaymentProof:  strings.NewReader("png"),
	}
}

func TestCreateSubscriptionStartsPendingWithNoBookings(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	serviceA, serviceB := uuid.New(), uuid.New()
	req := createRequest(plan, serviceA, serviceB, serviceA)

	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil).Once()
	f.uow.services.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil).Once()
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.proofs.On("SavePaymentProof", mock.Anything, req.PaymentProof).Return("uploads/payment-proofs/a.png", nil).Once()
	f.uow.subscriptions.On("CreateSubscription", mock.Anything, mock.AnythingOfType("*entity.VendorSubscription")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.VendorSubscription).Id = uuid.New()
		}).
		Return(nil).Once()

	res, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(entity.SubscriptionStatusPending), res.Status)
	assert.Equal(t, string(entity.PaymentStatusPending), res.PaymentStatus)
	assert.Equal(t, 0, res.BookingsLeft)
	assert.Equal(t, string(entity.PlanTypeBasic), res.PlanType)
	assert.True(t, plan.Price.Equal(res.Price))
	assert.Equal(t, fixedNow, res.StartDate)
	assert.Equal(t, fixedNow.AddDate(0, 0, 30), res.EndDate)
	assert.Equal(t, "TRX-1", res.TransactionId)
	assert.Equal(t, []uuid.UUID{serviceA, serviceB}, res.SelectedServices)
	assert.Equal(t, plan.FeatureBullets(), res.Features)
	assert.Equal(t, "uploads/payment-proofs/a.png", res.PaymentProof)
	assert.Equal(t, []string{events.SubscriptionCreated}, f.publisher.types())
	f.uow.subscriptions.AssertExpectations(t)
	f.proofs.AssertExpectations(t)
}

func TestCreateSubscriptionRejectsOpenSubscription(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	req := createRequest(plan, uuid.New())

	open := &entity.VendorSubscription{
		Id:       uuid.New(),
		VendorId: req.VendorId,
		Status:   entity.SubscriptionStatusPending,
		EndDate:  fixedNow.AddDate(0, 0, 30),
	}
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	f.uow.services.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(open, nil)

	_, err := f.svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, apperror.ErrOpenSubscription)
	f.proofs.AssertNotCalled(t, "SavePaymentProof", mock.Anything, mock.Anything)
	f.uow.subscriptions.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.types())
}

func TestCreateSubscriptionExpiresOverdueSubscriptionFirst(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	req := createRequest(plan, uuid.New())

	overdue := &entity.VendorSubscription{
		Id:       uuid.New(),
		VendorId: req.VendorId,
		Status:   entity.SubscriptionStatusActive,
		EndDate:  fixedNow.Add(-time.Hour),
	}
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	f.uow.services.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(overdue, nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, overdue).Return(nil).Once()
	f.proofs.On("SavePaymentProof", mock.Anything, mock.Anything).Return("uploads/payment-proofs/b.png", nil)
	f.uow.subscriptions.On("CreateSubscription", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionStatusExpired, overdue.Status)
	assert.Equal(t, []string{events.SubscriptionExpired, events.SubscriptionCreated}, f.publisher.types())
}

func TestCreateSubscriptionValidatesServiceSelection(t *testing.T) {
	plan := basicPlan()

	tooMany := make([]uuid.UUID, entity.MaxSelectedServices+1)
	for i := range tooMany {
		tooMany[i] = uuid.New()
	}
	elevenWithDuplicate := append(append([]uuid.UUID{}, tooMany[:entity.MaxSelectedServices]...), tooMany[0])

	tests := []struct {
		name       string
		serviceIds []uuid.UUID
		found      int64
	}{
		{name: "none", serviceIds: nil},
		{name: "only nil ids", serviceIds: []uuid.UUID{uuid.Nil}},
		{name: "more than ten", serviceIds: tooMany},
		{name: "eleven entries with a duplicate", serviceIds: elevenWithDuplicate, found: int64(entity.MaxSelectedServices)},
		{name: "unknown service", serviceIds: []uuid.UUID{uuid.New(), uuid.New()}, found: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture()
			f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
			f.uow.services.On("Count", mock.Anything, mock.Anything).Return(tt.found, nil)

			_, err := f.svc.Create(context.Background(), createRequest(plan, tt.serviceIds...))

			assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput), "got %v", err)
			f.proofs.AssertNotCalled(t, "SavePaymentProof", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateSubscriptionAcceptsSelectionBounds(t *testing.T) {
	plan := basicPlan()

	for _, count := range []int{entity.MinSelectedServices, entity.MaxSelectedServices} {
		t.Run(fmt.Sprintf("%d services", count), func(t *testing.T) {
			f := newSubscriptionFixture()
			serviceIds := make([]uuid.UUID, count)
			for i := range serviceIds {
				serviceIds[i] = uuid.New()
			}

			f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
			f.uow.services.On("Count", mock.Anything, mock.Anything).Return(int64(count), nil)
			f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(nil, nil)
			f.proofs.On("SavePaymentProof", mock.Anything, mock.Anything).Return("uploads/payment-proofs/d.png", nil)
			f.uow.subscriptions.On("CreateSubscription", mock.Anything, mock.Anything).Return(nil).Once()

			res, err := f.svc.Create(context.Background(), createRequest(plan, serviceIds...))
			require.NoError(t, err)
			assert.Len(t, res.SelectedServices, count)
			f.uow.subscriptions.AssertExpectations(t)
		})
	}
}

func TestCreateSubscriptionRejectsInactivePlan(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	plan.IsActive = false
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)

	_, err := f.svc.Create(context.Background(), createRequest(plan, uuid.New()))

	assert.ErrorIs(t, err, apperror.ErrPlanNotFound)
}

func TestCreateSubscriptionRemovesProofWhenInsertFails(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	req := createRequest(plan, uuid.New())

	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	f.uow.services.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(nil, nil)
	f.proofs.On("SavePaymentProof", mock.Anything, mock.Anything).Return("uploads/payment-proofs/c.png", nil)
	f.uow.subscriptions.On("CreateSubscription", mock.Anything, mock.Anything).Return(apperror.ErrOpenSubscription)
	f.proofs.On("Delete", mock.Anything, "uploads/payment-proofs/c.png").Return(nil).Once()

	_, err := f.svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, apperror.ErrOpenSubscription)
	f.proofs.AssertExpectations(t)
	assert.Empty(t, f.publisher.types())
}

func TestRecordPaymentProofRejectsOtherVendor(t *testing.T) {
	f := newSubscriptionFixture()
	sub := &entity.VendorSubscription{Id: uuid.New(), VendorId: uuid.New()}
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)

	_, err := f.svc.RecordPaymentProof(context.Background(), &dto.RecordPaymentProofRequest{
		SubscriptionId: sub.Id,
		VendorId:       uuid.New(),
		PaymentProof:   strings.NewReader("png"),
	})

	assert.ErrorIs(t, err, apperror.ErrNotSubscriptionOwner)
	f.proofs.AssertNotCalled(t, "SavePaymentProof", mock.Anything, mock.Anything)
}

func TestRecordPaymentProofReplacesPreviousFile(t *testing.T) {
	f := newSubscriptionFixture()
	sub := &entity.VendorSubscription{
		Id:            uuid.New(),
		VendorId:      uuid.New(),
		Status:        entity.SubscriptionStatusPending,
		PaymentStatus: entity.PaymentStatusFailed,
		PaymentProof:  "uploads/payment-proofs/old.png",
	}
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.proofs.On("SavePaymentProof", mock.Anything, mock.Anything).Return("uploads/payment-proofs/new.png", nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, sub).Return(nil)
	f.proofs.On("Delete", mock.Anything, "uploads/payment-proofs/old.png").Return(nil).Once()

	res, err := f.svc.RecordPaymentProof(context.Background(), &dto.RecordPaymentProofRequest{
		SubscriptionId: sub.Id,
		VendorId:       sub.VendorId,
		TransactionId:  "TRX-2",
		PaymentProof:   strings.NewReader("png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "uploads/payment-proofs/new.png", res.PaymentProof)
	assert.Equal(t, "TRX-2", res.TransactionId)
	assert.Equal(t, string(entity.PaymentStatusPending), res.PaymentStatus)
	assert.Equal(t, []string{events.SubscriptionPaymentProofUpdated}, f.publisher.types())
	f.proofs.AssertExpectations(t)
}

func pendingSubscription(plan *entity.SubscriptionPlan) *entity.VendorSubscription {
	return &entity.VendorSubscription{
		Id:            uuid.New(),
		VendorId:      uuid.New(),
		PlanId:        plan.Id,
		PlanType:      entity.PlanTypeBasic,
		Status:        entity.SubscriptionStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		EndDate:       fixedNow.AddDate(0, 0, 30),
	}
}

func TestVerifyPaidActivatesAndGrantsAllowance(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	sub := pendingSubscription(plan)
	adminId := uuid.New()

	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, sub).Return(nil).Once()

	res, err := f.svc.Verify(context.Background(), sub.Id, " PAID ", adminId)
	require.NoError(t, err)

	assert.Equal(t, string(entity.SubscriptionStatusActive), res.Status)
	assert.Equal(t, string(entity.PaymentStatusPaid), res.PaymentStatus)
	assert.Equal(t, plan.BookingLimit, res.BookingsLeft)
	require.NotNil(t, res.VerifiedBy)
	assert.Equal(t, adminId, *res.VerifiedBy)
	require.NotNil(t, res.VerifiedAt)
	assert.Equal(t, fixedNow, *res.VerifiedAt)
	assert.Equal(t, []string{events.SubscriptionActivated}, f.publisher.types())
}

func TestVerifyPaidAgainResetsAllowanceWithoutSecondActivation(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	sub := pendingSubscription(plan)
	sub.Status = entity.SubscriptionStatusActive
	sub.PaymentStatus = entity.PaymentStatusPaid
	sub.BookingsLeft = 3

	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, sub).Return(nil).Once()

	res, err := f.svc.Verify(context.Background(), sub.Id, "paid", uuid.New())
	require.NoError(t, err)

	assert.Equal(t, plan.BookingLimit, res.BookingsLeft)
	assert.Equal(t, string(entity.SubscriptionStatusActive), res.Status)
	f.uow.subscriptions.AssertExpectations(t)
	assert.Empty(t, f.publisher.types())
}

func TestVerifyPaidFallsBackWhenPlanIsGone(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	sub := pendingSubscription(plan)
	sub.PlanType = entity.PlanTypePremium

	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(nil, nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, sub).Return(nil)

	res, err := f.svc.Verify(context.Background(), sub.Id, "paid", uuid.New())
	require.NoError(t, err)

	assert.Equal(t, entity.FallbackBookingLimit(entity.PlanTypePremium), res.BookingsLeft)
}

func TestVerifyFailedCancels(t *testing.T) {
	f := newSubscriptionFixture()
	sub := pendingSubscription(basicPlan())

	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, sub).Return(nil)

	res, err := f.svc.Verify(context.Background(), sub.Id, "failed", uuid.New())
	require.NoError(t, err)

	assert.Equal(t, string(entity.SubscriptionStatusCancelled), res.Status)
	assert.Equal(t, string(entity.PaymentStatusFailed), res.PaymentStatus)
	assert.Equal(t, 0, res.BookingsLeft)
	assert.Equal(t, []string{events.SubscriptionRejected}, f.publisher.types())
}

func TestVerifyValidatesStatusBeforeLookup(t *testing.T) {
	f := newSubscriptionFixture()

	_, err := f.svc.Verify(context.Background(), uuid.New(), "refunded", uuid.New())

	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
	f.uow.subscriptions.AssertNotCalled(t, "FindOneSubscription", mock.Anything, mock.Anything)
}

func TestVerifyUnknownSubscription(t *testing.T) {
	f := newSubscriptionFixture()
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.svc.Verify(context.Background(), uuid.New(), "paid", uuid.New())

	assert.ErrorIs(t, err, apperror.ErrSubscriptionNotFound)
}

func TestDecrementQuota(t *testing.T) {
	f := newSubscriptionFixture()
	vendorId := uuid.New()
	sub := &entity.VendorSubscription{Id: uuid.New(), VendorId: vendorId, BookingsLeft: 4}

	f.uow.subscriptions.On("ConsumeBooking", mock.Anything, vendorId, fixedNow).Return(sub, nil).Once()

	res, err := f.svc.DecrementQuota(context.Background(), vendorId)
	require.NoError(t, err)

	assert.Equal(t, sub.Id, res.SubscriptionId)
	assert.Equal(t, 4, res.BookingsLeft)
	assert.Equal(t, []string{events.BookingQuotaConsumed}, f.publisher.types())
}

func TestDecrementQuotaPassesThroughFailures(t *testing.T) {
	for _, want := range []error{apperror.ErrQuotaExhausted, apperror.ErrNoActiveSubscription} {
		f := newSubscriptionFixture()
		vendorId := uuid.New()
		f.uow.subscriptions.On("ConsumeBooking", mock.Anything, vendorId, fixedNow).Return(nil, want)

		_, err := f.svc.DecrementQuota(context.Background(), vendorId)

		assert.ErrorIs(t, err, want)
		assert.Empty(t, f.publisher.types())
	}
}

func TestGetVendorSubscriptionExpiresOverdueOnRead(t *testing.T) {
	f := newSubscriptionFixture()
	sub := &entity.VendorSubscription{
		Id:       uuid.New(),
		VendorId: uuid.New(),
		Status:   entity.SubscriptionStatusActive,
		EndDate:  fixedNow,
	}
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.uow.subscriptions.On("UpdateSubscription", mock.Anything, sub).Return(nil).Once()

	_, err := f.svc.GetVendorSubscription(context.Background(), sub.VendorId)

	assert.ErrorIs(t, err, apperror.ErrSubscriptionNotFound)
	assert.Equal(t, entity.SubscriptionStatusExpired, sub.Status)
	assert.Equal(t, []string{events.SubscriptionExpired}, f.publisher.types())
}

func TestGetVendorSubscriptionReturnsOpenSubscription(t *testing.T) {
	f := newSubscriptionFixture()
	sub := pendingSubscription(basicPlan())
	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)

	res, err := f.svc.GetVendorSubscription(context.Background(), sub.VendorId)
	require.NoError(t, err)

	assert.Equal(t, sub.Id, res.Id)
	f.uow.subscriptions.AssertNotCalled(t, "UpdateSubscription", mock.Anything, mock.Anything)
}

func TestListSubscriptionsPaginatesAndJoinsVendors(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	vendor := &entity.User{Id: uuid.New(), Name: "Sparkle Cleaning", Email: "sparkle@example.com"}
	sub := pendingSubscription(plan)
	sub.VendorId = vendor.Id

	f.uow.subscriptions.On("CountSubscriptions", mock.Anything, mock.Anything).Return(int64(45), nil)
	f.uow.subscriptions.On("FindAllSubscriptions", mock.Anything, mock.Anything).Return([]*entity.VendorSubscription{sub}, nil)
	f.uow.users.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.User{vendor}, nil)
	f.uow.subscriptions.On("FindAllPlans", mock.Anything, mock.Anything).Return([]*entity.SubscriptionPlan{plan}, nil)

	res, err := f.svc.ListSubscriptions(context.Background(), dto.SubscriptionListFilter{
		Status: "pending",
		Search: "sparkle",
		Page:   2,
		Limit:  500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(45), res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, maxPageSize, res.Limit)
	assert.Equal(t, 1, res.TotalPages)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Sparkle Cleaning", res.Items[0].Vendor.Name)
	assert.Equal(t, plan.Name, res.Items[0].PlanName)
}

func TestListSubscriptionsRejectsUnknownFilters(t *testing.T) {
	f := newSubscriptionFixture()

	_, err := f.svc.ListSubscriptions(context.Background(), dto.SubscriptionListFilter{Status: "archived"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))

	_, err = f.svc.ListSubscriptions(context.Background(), dto.SubscriptionListFilter{PaymentStatus: "refunded"})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
}

func TestGetSubscriptionDetail(t *testing.T) {
	f := newSubscriptionFixture()
	plan := basicPlan()
	sub := pendingSubscription(plan)
	svcA := &entity.Service{Id: uuid.New(), Name: "Deep Cleaning"}
	sub.SelectedServices = []uuid.UUID{svcA.Id}

	f.uow.subscriptions.On("FindOneSubscription", mock.Anything, mock.Anything).Return(sub, nil)
	f.uow.users.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
	f.uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	f.uow.services.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Service{svcA}, nil)

	res, err := f.svc.GetSubscription(context.Background(), sub.Id)
	require.NoError(t, err)

	assert.Nil(t, res.Vendor)
	require.NotNil(t, res.Plan)
	assert.Equal(t, plan.Id, res.Plan.Id)
	require.Len(t, res.Services, 1)
	assert.Equal(t, "Deep Cleaning", res.Services[0].Name)
}

func TestExpireOverduePublishesPerRow(t *testing.T) {
	f := newSubscriptionFixture()
	expired := []*entity.VendorSubscription{
		{Id: uuid.New(), Status: entity.SubscriptionStatusExpired},
		{Id: uuid.New(), Status: entity.SubscriptionStatusExpired},
	}
	f.uow.subscriptions.On("ExpireOverdue", mock.Anything, fixedNow).Return(expired, nil).Once()

	n, err := f.svc.ExpireOverdue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{events.SubscriptionExpired, events.SubscriptionExpired}, f.publisher.types())
}

func TestExpireOverdueReturnsRepositoryError(t *testing.T) {
	f := newSubscriptionFixture()
	f.uow.subscriptions.On("ExpireOverdue", mock.Anything, fixedNow).Return(nil, errors.New("db down"))

	n, err := f.svc.ExpireOverdue(context.Background())

	assert.Error(t, err)
	assert.Zero(t, n)
}
