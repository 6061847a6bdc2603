package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	Id          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	IsActive    bool            `json:"isActive"`
}

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Category    string          `json:"category" validate:"max=100"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
}

type CreateBookingRequest struct {
	ServiceId   uuid.UUID `json:"serviceId" validate:"required"`
	VendorId    uuid.UUID `json:"vendorId" validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Address     string    `json:"address" validate:"max=500"`
	Notes       string    `json:"notes" validate:"max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

type BookingStatusChangeResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ChangedBy uuid.UUID `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

type BookingResponse struct {
	Id            uuid.UUID                     `json:"id"`
	CustomerId    uuid.UUID                     `json:"customerId"`
	VendorId      uuid.UUID                     `json:"vendorId"`
	ServiceId     uuid.UUID                     `json:"serviceId"`
	Status        string                        `json:"status"`
	ScheduledAt   time.Time                     `json:"scheduledAt"`
	Address       string                        `json:"address"`
	Notes         string                        `json:"notes"`
	StatusHistory []BookingStatusChangeResponse `json:"statusHistory"`
	CreatedAt     time.Time                     `json:"createdAt"`
	UpdatedAt     time.Time                     `json:"updatedAt"`
}

// BookingStatusResponse is returned by the vendor status endpoint.
type BookingStatusResponse struct {
	Booking      BookingResponse `json:"booking"`
	BookingsLeft *int            `json:"bookingsLeft,omitempty"`
}
