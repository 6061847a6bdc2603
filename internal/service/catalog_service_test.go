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

func TestListServices(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := NewCatalogService(&mockFactory{uow: uow}, logger.NewNopLogger())
	uow.services.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Service{
		{Id: uuid.New(), Name: "AC Repair", Category: "maintenance", IsActive: true},
	}, nil)

	res, err := svc.ListServices(context.Background(), "maintenance")
	require.NoError(t, err)

	require.Len(t, res, 1)
	assert.Equal(t, "AC Repair", res[0].Name)
}

func TestCreateServiceRejectsDuplicateName(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := NewCatalogService(&mockFactory{uow: uow}, logger.NewNopLogger())
	uow.services.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Service{Id: uuid.New()}, nil)

	_, err := svc.CreateService(context.Background(), &dto.CreateServiceRequest{Name: "AC Repair"})

	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	uow.services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateService(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := NewCatalogService(&mockFactory{uow: uow}, logger.NewNopLogger())
	uow.services.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
	uow.services.On("Create", mock.Anything, mock.AnythingOfType("*entity.Service")).Return(nil).Once()

	res, err := svc.CreateService(context.Background(), &dto.CreateServiceRequest{
		Name:      "Deep Cleaning",
		Category:  " cleaning ",
		BasePrice: decimal.NewFromInt(150000),
	})
	require.NoError(t, err)

	assert.Equal(t, "cleaning", res.Category)
	assert.True(t, res.IsActive)
	uow.services.AssertExpectations(t)
}
