package unitofwork

import (
	"context"

	"vendor-marketplace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ServiceRepository() contract.ServiceRepository
	BookingRepository() contract.BookingRepository
}
