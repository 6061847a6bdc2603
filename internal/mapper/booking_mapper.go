package mapper

import (
	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/model"

	"gorm.io/datatypes"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	history := make([]entity.BookingStatusChange, len(b.StatusHistory))
	for i, h := range b.StatusHistory {
		history[i] = entity.BookingStatusChange{
			Status:    entity.BookingStatus(h.Status),
			Note:      h.Note,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		}
	}
	return &entity.Booking{
		Id:            b.Id,
		CustomerId:    b.CustomerId,
		VendorId:      b.VendorId,
		ServiceId:     b.ServiceId,
		Status:        entity.BookingStatus(b.Status),
		ScheduledAt:   b.ScheduledAt,
		Address:       b.Address,
		Notes:         b.Notes,
		StatusHistory: history,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	history := make([]model.BookingStatusChange, len(b.StatusHistory))
	for i, h := range b.StatusHistory {
		history[i] = model.BookingStatusChange{
			Status:    string(h.Status),
			Note:      h.Note,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		}
	}
	return &model.Booking{
		Id:            b.Id,
		CustomerId:    b.CustomerId,
		VendorId:      b.VendorId,
		ServiceId:     b.ServiceId,
		Status:        string(b.Status),
		ScheduledAt:   b.ScheduledAt,
		Address:       b.Address,
		Notes:         b.Notes,
		StatusHistory: datatypes.NewJSONSlice(history),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (m *BookingMapper) ServiceToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:          s.Id,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *BookingMapper) ServiceToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	return &model.Service{
		Id:          s.Id,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
