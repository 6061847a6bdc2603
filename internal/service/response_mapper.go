package service

import (
	"vendor-marketplace-be/internal/dto"
	"vendor-marketplace-be/internal/entity"
)

func toPlanResponse(p *entity.SubscriptionPlan) dto.PlanResponse {
	return dto.PlanResponse{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Duration:     p.DurationLabel(),
		BookingLimit: p.BookingLimit,
		Features:     p.FeatureBullets(),
	}
}

func toAdminPlanResponse(p *entity.SubscriptionPlan) *dto.AdminPlanResponse {
	return &dto.AdminPlanResponse{
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

func toSubscriptionResponse(s *entity.VendorSubscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
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
		SelectedServices: s.SelectedServices,
		BookingsLeft:     s.BookingsLeft,
		Features:         s.Features,
		VerifiedAt:       s.VerifiedAt,
		VerifiedBy:       s.VerifiedBy,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toVendorSummary(u *entity.User) *dto.VendorSummary {
	if u == nil {
		return nil
	}
	return &dto.VendorSummary{
		Id:    u.Id,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		Id:          s.Id,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		IsActive:    s.IsActive,
	}
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	history := make([]dto.BookingStatusChangeResponse, len(b.StatusHistory))
	for i, h := range b.StatusHistory {
		history[i] = dto.BookingStatusChangeResponse{
			Status:    string(h.Status),
			Note:      h.Note,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		}
	}
	return &dto.BookingResponse{
		Id:            b.Id,
		CustomerId:    b.CustomerId,
		VendorId:      b.VendorId,
		ServiceId:     b.ServiceId,
		Status:        string(b.Status),
		ScheduledAt:   b.ScheduledAt,
		Address:       b.Address,
		Notes:         b.Notes,
		StatusHistory: history,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
