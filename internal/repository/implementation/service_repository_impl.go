package implementation

import (
	"context"
	"errors"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/mapper"
	"vendor-marketplace-be/internal/model"
	"vendor-marketplace-be/internal/repository/contract"
	"vendor-marketplace-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewServiceRepository(db *gorm.DB) contract.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *ServiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, "service name already exists")
	}
	*service = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err, "service name already exists")
	}
	*service = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	var m model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ServiceToEntity(&m), nil
}

func (r *ServiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	var models []*model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	services := make([]*entity.Service, len(models))
	for i, m := range models {
		services[i] = r.mapper.ServiceToEntity(m)
	}
	return services, nil
}

func (r *ServiceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Service{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
