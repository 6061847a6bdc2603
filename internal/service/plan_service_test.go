package service

import (
	"context"
	"testing"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlanFixture() (PlanService, *mockUnitOfWork, *mockPlanCache) {
	uow := newMockUnitOfWork()
	cache := &mockPlanCache{}
	return NewPlanService(&mockFactory{uow: uow}, cache, logger.NewNopLogger()), uow, cache
}

func TestListPlansServedFromCache(t *testing.T) {
	svc, uow, cache := newPlanFixture()
	cache.On("GetActivePlans", mock.Anything).Return([]*entity.SubscriptionPlan{basicPlan()}, true)

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)

	require.Len(t, plans, 1)
	assert.Equal(t, "30 days", plans[0].Duration)
	assert.Contains(t, plans[0].Features, "Up to 10 bookings")
	uow.subscriptions.AssertNotCalled(t, "FindAllPlans", mock.Anything, mock.Anything)
}

func TestListPlansFillsCacheOnMiss(t *testing.T) {
	svc, uow, cache := newPlanFixture()
	stored := []*entity.SubscriptionPlan{basicPlan(), basicPlan()}
	cache.On("GetActivePlans", mock.Anything).Return(nil, false)
	uow.subscriptions.On("FindAllPlans", mock.Anything, mock.Anything).Return(stored, nil).Once()
	cache.On("SetActivePlans", mock.Anything, stored).Once()

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)

	assert.Len(t, plans, 2)
	cache.AssertExpectations(t)
}

func TestCreatePlan(t *testing.T) {
	svc, uow, cache := newPlanFixture()
	uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(nil, nil)
	uow.subscriptions.On("CreatePlan", mock.Anything, mock.AnythingOfType("*entity.SubscriptionPlan")).Return(nil).Once()
	cache.On("Invalidate", mock.Anything).Once()

	res, err := svc.CreatePlan(context.Background(), &dto.CreatePlanRequest{
		Name:           " Premium Plan ",
		Price:          decimal.NewFromInt(299000),
		BookingLimit:   50,
		ValidityPeriod: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium Plan", res.Name)
	assert.True(t, res.IsActive)
	cache.AssertExpectations(t)
}

func TestCreatePlanRejections(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		svc, _, _ := newPlanFixture()
		_, err := svc.CreatePlan(context.Background(), &dto.CreatePlanRequest{
			Name: "Basic", Price: decimal.NewFromInt(-1), BookingLimit: 1, ValidityPeriod: 1,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
	})

	t.Run("zero limit", func(t *testing.T) {
		svc, _, _ := newPlanFixture()
		_, err := svc.CreatePlan(context.Background(), &dto.CreatePlanRequest{Name: "Basic", ValidityPeriod: 1})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, uow, _ := newPlanFixture()
		uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(basicPlan(), nil)
		_, err := svc.CreatePlan(context.Background(), &dto.CreatePlanRequest{Name: "Basic Plan", BookingLimit: 1, ValidityPeriod: 1})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})
}

func TestUpdatePlanAppliesOnlySetFields(t *testing.T) {
	svc, uow, cache := newPlanFixture()
	plan := basicPlan()
	limit := 15
	uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil).Once()
	uow.subscriptions.On("UpdatePlan", mock.Anything, plan).Return(nil).Once()
	cache.On("Invalidate", mock.Anything).Once()

	res, err := svc.UpdatePlan(context.Background(), plan.Id, &dto.UpdatePlanRequest{BookingLimit: &limit})
	require.NoError(t, err)

	assert.Equal(t, 15, res.BookingLimit)
	assert.Equal(t, "Basic Plan", res.Name)
	assert.Equal(t, 30, res.ValidityPeriod)
}

func TestUpdatePlanNotFound(t *testing.T) {
	svc, uow, _ := newPlanFixture()
	uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.UpdatePlan(context.Background(), uuid.New(), &dto.UpdatePlanRequest{})

	assert.ErrorIs(t, err, apperror.ErrPlanNotFound)
}

func TestDeactivatePlan(t *testing.T) {
	svc, uow, cache := newPlanFixture()
	plan := basicPlan()
	uow.subscriptions.On("FindOnePlan", mock.Anything, mock.Anything).Return(plan, nil)
	uow.subscriptions.On("UpdatePlan", mock.Anything, plan).Return(nil).Once()
	cache.On("Invalidate", mock.Anything).Once()

	require.NoError(t, svc.DeactivatePlan(context.Background(), plan.Id))
	assert.False(t, plan.IsActive)

	// second call is a no-op
	require.NoError(t, svc.DeactivatePlan(context.Background(), plan.Id))
	uow.subscriptions.AssertNumberOfCalls(t, "UpdatePlan", 1)
	cache.AssertExpectations(t)
}
