package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plans

type PlanResponse struct {
	Id           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Duration     string          `json:"duration"`
	BookingLimit int             `json:"bookingLimit"`
	Features     []string        `json:"features"`
}

type AdminPlanResponse struct {
	Id             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	BookingLimit   int             `json:"bookingLimit"`
	ValidityPeriod int             `json:"validityPeriod"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type CreatePlanRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	BookingLimit   int             `json:"bookingLimit" validate:"min=1"`
	ValidityPeriod int             `json:"validityPeriod" validate:"min=1"`
}

// UpdatePlanRequest applies only the fields that are set.
type UpdatePlanRequest struct {
	Name           *string          `json:"name" validate:"omitempty,max=255"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	BookingLimit   *int             `json:"bookingLimit" validate:"omitempty,min=1"`
	ValidityPeriod *int             `json:"validityPeriod" validate:"omitempty,min=1"`
	IsActive       *bool            `json:"isActive"`
}

// Subscriptions

// ServiceIds may hold at most 10 entries as submitted; duplicates are collapsed
// afterwards and at least one distinct id must remain.
type CreateSubscriptionRequest struct {
	VendorId      uuid.UUID
	PlanId        uuid.UUID
	ServiceIds    []uuid.UUID
	TransactionId string
	PaymentProof  io.Reader
}

type RecordPaymentProofRequest struct {
	SubscriptionId uuid.UUID
	VendorId       uuid.UUID
	TransactionId  string
	PaymentProof   io.Reader
}

type VerifySubscriptionRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

type SubscriptionResponse struct {
	Id               uuid.UUID       `json:"id"`
	VendorId         uuid.UUID       `json:"vendorId"`
	PlanId           uuid.UUID       `json:"planId"`
	PlanType         string          `json:"planType"`
	Price            decimal.Decimal `json:"price"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	PaymentProof     string          `json:"paymentProof"`
	TransactionId    string          `json:"transactionId"`
	SelectedServices []uuid.UUID     `json:"selectedServices"`
	BookingsLeft     int             `json:"bookingsLeft"`
	Features         []string        `json:"features"`
	VerifiedAt       *time.Time      `json:"verifiedAt,omitempty"`
	VerifiedBy       *uuid.UUID      `json:"verifiedBy,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type QuotaResponse struct {
	SubscriptionId uuid.UUID `json:"subscriptionId"`
	BookingsLeft   int       `json:"bookingsLeft"`
}

// SubscriptionListFilter is the admin review query. Empty fields do not filter.
type SubscriptionListFilter struct {
	PlanId        *uuid.UUID
	Status        string
	PaymentStatus string
	Search        string
	Page          int
	Limit         int
}

type VendorSummary struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type SubscriptionListItem struct {
	SubscriptionResponse
	Vendor   *VendorSummary `json:"vendor,omitempty"`
	PlanName string         `json:"planName"`
}

type SubscriptionDetailResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Vendor       *VendorSummary       `json:"vendor,omitempty"`
	Plan         *AdminPlanResponse   `json:"plan,omitempty"`
	Services     []ServiceResponse    `json:"services"`
}

type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
