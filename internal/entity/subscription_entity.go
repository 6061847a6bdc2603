// FILE: internal/entity/subscription_entity.go
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string
type PaymentStatus string
type PlanType string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"

	PlanTypeBasic    PlanType = "basic"
	PlanTypeStandard PlanType = "standard"
	PlanTypePremium  PlanType = "premium"
)

const (
	MinSelectedServices = 1
	MaxSelectedServices = 10
)

// Booking allowance used when a subscription's plan row no longer exists.
var fallbackBookingLimits = map[PlanType]int{
	PlanTypeBasic:    10,
	PlanTypeStandard: 25,
	PlanTypePremium:  50,
}

type SubscriptionPlan struct {
	Id             uuid.UUID
	Name           string
	Description    string
	Price          decimal.Decimal
	BookingLimit   int
	ValidityPeriod int // days
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VendorSubscription struct {
	Id               uuid.UUID
	VendorId         uuid.UUID
	PlanId           uuid.UUID
	PlanType         PlanType
	Price            decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
	Status           SubscriptionStatus
	PaymentStatus    PaymentStatus
	PaymentProof     string
	TransactionId    string
	SelectedServices []uuid.UUID
	BookingsLeft     int
	Features         []string
	VerifiedAt       *time.Time
	VerifiedBy       *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOpen reports whether the subscription blocks the vendor from opening another one.
func (s *VendorSubscription) IsOpen() bool {
	return s.Status == SubscriptionStatusPending || s.Status == SubscriptionStatusActive
}

// IsOverdue reports an active subscription whose validity window has ended.
func (s *VendorSubscription) IsOverdue(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && !s.EndDate.After(now)
}

// PlanTypeFromName derives the tier label from a plan name.
func PlanTypeFromName(name string) PlanType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, string(PlanTypeStandard)):
		return PlanTypeStandard
	case strings.Contains(lower, string(PlanTypePremium)):
		return PlanTypePremium
	default:
		return PlanTypeBasic
	}
}

func FallbackBookingLimit(planType PlanType) int {
	if limit, ok := fallbackBookingLimits[planType]; ok {
		return limit
	}
	return fallbackBookingLimits[PlanTypeBasic]
}

func IsValidSubscriptionStatus(s string) bool {
	switch SubscriptionStatus(s) {
	case SubscriptionStatusPending, SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// DurationLabel renders the validity window for display, e.g. "30 days".
func (p *SubscriptionPlan) DurationLabel() string {
	if p.ValidityPeriod == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", p.ValidityPeriod)
}

// FeatureBullets is the feature list shown on plan cards and copied onto new subscriptions.
func (p *SubscriptionPlan) FeatureBullets() []string {
	return []string{
		fmt.Sprintf("Up to %d bookings", p.BookingLimit),
		fmt.Sprintf("Valid for %s", p.DurationLabel()),
		fmt.Sprintf("List up to %d services", MaxSelectedServices),
		"Manual payment verification",
	}
}
