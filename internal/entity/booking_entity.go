package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Statuses a vendor may move a booking into.
var VendorTransitionStatuses = []BookingStatus{
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

func IsVendorTransitionStatus(s string) bool {
	for _, allowed := range VendorTransitionStatuses {
		if BookingStatus(s) == allowed {
			return true
		}
	}
	return false
}

type BookingStatusChange struct {
	Status    BookingStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	ChangedBy uuid.UUID     `json:"changedBy"`
	ChangedAt time.Time     `json:"changedAt"`
}

type Booking struct {
	Id            uuid.UUID
	CustomerId    uuid.UUID
	VendorId      uuid.UUID
	ServiceId     uuid.UUID
	Status        BookingStatus
	ScheduledAt   time.Time
	Address       string
	Notes         string
	StatusHistory []BookingStatusChange
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Service is a catalog entry vendors opt into and customers book.
type Service struct {
	Id          uuid.UUID
	Name        string
	Category    string
	Description string
	BasePrice   decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
