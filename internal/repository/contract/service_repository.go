package contract

import (
	"context"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/repository/specification"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
