package service

import (
	"context"
	"io"
	"sync"
	"time"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/repository/contract"
	"vendor-marketplace-be/internal/repository/specification"
	"vendor-marketplace-be/internal/repository/unitofwork"
	"vendor-marketplace-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockFactory struct {
	uow *mockUnitOfWork
}

func (f *mockFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type mockUnitOfWork struct {
	users         *mockUserRepository
	subscriptions *mockSubscriptionRepository
	services      *mockServiceRepository
	bookings      *mockBookingRepository

	begun      int
	committed  int
	rolledBack int
	inTx       bool
}

func newMockUnitOfWork() *mockUnitOfWork {
	return &mockUnitOfWork{
		users:         &mockUserRepository{},
		subscriptions: &mockSubscriptionRepository{},
		services:      &mockServiceRepository{},
		bookings:      &mockBookingRepository{},
	}
}

func (u *mockUnitOfWork) Begin(ctx context.Context) error {
	u.begun++
	u.inTx = true
	return nil
}

func (u *mockUnitOfWork) Commit() error {
	u.committed++
	u.inTx = false
	return nil
}

func (u *mockUnitOfWork) Rollback() error {
	if u.inTx {
		u.rolledBack++
		u.inTx = false
	}
	return nil
}

func (u *mockUnitOfWork) UserRepository() contract.UserRepository                 { return u.users }
func (u *mockUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository { return u.subscriptions }
func (u *mockUnitOfWork) ServiceRepository() contract.ServiceRepository           { return u.services }
func (u *mockUnitOfWork) BookingRepository() contract.BookingRepository           { return u.bookings }

// Users

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

// Subscriptions

type consumeFunc func(vendorId uuid.UUID, now time.Time) (*entity.VendorSubscription, error)

type mockSubscriptionRepository struct{ mock.Mock }

func (m *mockSubscriptionRepository) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockSubscriptionRepository) UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockSubscriptionRepository) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.SubscriptionPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.SubscriptionPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) CreateSubscription(ctx context.Context, sub *entity.VendorSubscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepository) UpdateSubscription(ctx context.Context, sub *entity.VendorSubscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockSubscriptionRepository) FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.VendorSubscription, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.VendorSubscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.VendorSubscription, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.VendorSubscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) CountSubscriptions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

// ConsumeBooking accepts either a fixed result or a consumeFunc as the first return value.
func (m *mockSubscriptionRepository) ConsumeBooking(ctx context.Context, vendorId uuid.UUID, now time.Time) (*entity.VendorSubscription, error) {
	args := m.Called(ctx, vendorId, now)
	switch v := args.Get(0).(type) {
	case consumeFunc:
		return v(vendorId, now)
	case *entity.VendorSubscription:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]*entity.VendorSubscription, error) {
	args := m.Called(ctx, now)
	if v := args.Get(0); v != nil {
		return v.([]*entity.VendorSubscription), args.Error(1)
	}
	return nil, args.Error(1)
}

// Services

type mockServiceRepository struct{ mock.Mock }

func (m *mockServiceRepository) Create(ctx context.Context, svc *entity.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepository) Update(ctx context.Context, svc *entity.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.(*entity.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

// Bookings

type findBookingFunc func() (*entity.Booking, error)

type mockBookingRepository struct{ mock.Mock }

func (m *mockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	args := m.Called(ctx, specs)
	switch v := args.Get(0).(type) {
	case findBookingFunc:
		return v()
	case *entity.Booking:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	args := m.Called(ctx, specs)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

// Collaborators

type mockProofStore struct{ mock.Mock }

func (m *mockProofStore) SavePaymentProof(ctx context.Context, r io.Reader) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

func (m *mockProofStore) Delete(ctx context.Context, relPath string) error {
	return m.Called(ctx, relPath).Error(0)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type mockPlanCache struct{ mock.Mock }

func (m *mockPlanCache) GetActivePlans(ctx context.Context) ([]*entity.SubscriptionPlan, bool) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.SubscriptionPlan), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *mockPlanCache) SetActivePlans(ctx context.Context, plans []*entity.SubscriptionPlan) {
	m.Called(ctx, plans)
}

func (m *mockPlanCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
