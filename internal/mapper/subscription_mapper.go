package mapper

import (
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.SubscriptionPlan{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		BookingLimit:   p.BookingLimit,
		ValidityPeriod: p.ValidityPeriod,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &model.SubscriptionPlan{
		Id:             p.Id,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		BookingLimit:   p.BookingLimit,
		ValidityPeriod: p.ValidityPeriod,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToEntity(s *model.VendorSubscription) *entity.VendorSubscription {
	if s == nil {
		return nil
	}
	return &entity.VendorSubscription{
		Id:               s.Id,
		VendorId:         s.VendorId,
		PlanId:           s.PlanId,
		PlanType:         entity.PlanType(s.PlanType),
		Price:            s.Price,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		Status:           entity.SubscriptionStatus(s.Status),
		PaymentStatus:    entity.PaymentStatus(s.PaymentStatus),
		PaymentProof:     s.PaymentProof,
		TransactionId:    s.TransactionId,
		SelectedServices: append([]uuid.UUID(nil), s.SelectedServices...),
		BookingsLeft:     s.BookingsLeft,
		Features:         append([]string(nil), s.Features...),
		VerifiedAt:       s.VerifiedAt,
		VerifiedBy:       s.VerifiedBy,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToModel(s *entity.VendorSubscription) *model.VendorSubscription {
	if s == nil {
		return nil
	}
	return &model.VendorSubscription{
		Id:               s.Id,
		VendorId:         s.VendorId,
		PlanId:           s.PlanId,
		PlanType:         string(s.PlanType),
		Price:            s.Price,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		Status:           string(s.Status),
		PaymentStatus:    string(s.PaymentStatus),
		PaymentProof:     s.PaymentProof,
		TransactionId:    s.TransactionId,
		SelectedServices: datatypes.NewJSONSlice(s.SelectedServices),
		BookingsLeft:     s.BookingsLeft,
		Features:         datatypes.NewJSONSlice(s.Features),
		VerifiedAt:       s.VerifiedAt,
		VerifiedBy:       s.VerifiedBy,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
