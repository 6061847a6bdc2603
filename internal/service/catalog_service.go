package service

import (
	"context"
	"strings"

	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/pkg/apperror"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/internal/repository/scope"
	"vendor-marketplace-be/internal/repository/specification"
	"vendor-marketplace-be/internal/repository/unitofwork"
)

// ICatalogService manages the services vendors can list and customers can book.
type ICatalogService interface {
	ListServices(ctx context.Context, category string) ([]dto.ServiceResponse, error)
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *catalogService) ListServices(ctx context.Context, category string) ([]dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ActiveOnly{}}
	if category = strings.TrimSpace(category); category != "" {
		specs = append(specs, specification.Filter("category", category))
	}
	specs = append(specs, specification.ScopeFunc(scope.OrderByNameAsc))

	services, err := uow.ServiceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		res = append(res, toServiceResponse(svc))
	}
	return res, nil
}

func (s *catalogService) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.InvalidInput("service name is required")
	}
	if req.BasePrice.IsNegative() {
		return nil, apperror.InvalidInput("basePrice must not be negative")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ServiceRepository()

	existing, err := repo.FindOne(ctx, specification.Filter("name", name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("service name already exists")
	}

	svc := &entity.Service{
		Name:        name,
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		IsActive:    true,
	}
	if err := repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("CATALOG", "Service created", map[string]interface{}{
		"service_id": svc.Id.String(),
		"name":       svc.Name,
	})
	res := toServiceResponse(svc)
	return &res, nil
}
