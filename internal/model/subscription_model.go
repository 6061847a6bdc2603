package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BookingLimit   int             `gorm:"not null;check:booking_limit >= 1"`
	ValidityPeriod int             `gorm:"not null;check:validity_period >= 1"`
	IsActive       bool            `gorm:"default:true"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// VendorSubscription has a partial unique index on vendor_id for open statuses;
// it is created by cmd/migrate because AutoMigrate cannot express the predicate.
type VendorSubscription struct {
	Id               uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendorId         uuid.UUID                     `gorm:"type:uuid;not null;index"`
	PlanId           uuid.UUID                     `gorm:"type:uuid;not null;index"`
	PlanType         string                        `gorm:"type:varchar(20);not null;default:'basic'"`
	Price            decimal.Decimal               `gorm:"type:decimal(10,2);not null"`
	StartDate        time.Time                     `gorm:"not null"`
	EndDate          time.Time                     `gorm:"not null;index"`
	Status           string                        `gorm:"type:subscription_status;not null;default:'pending';index"`
	PaymentStatus    string                        `gorm:"type:payment_status;not null;default:'pending'"`
	PaymentProof     string                        `gorm:"type:text"`
	TransactionId    string                        `gorm:"type:varchar(255)"`
	SelectedServices datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	BookingsLeft     int                           `gorm:"not null;default:0;check:bookings_left >= 0"`
	Features         datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	VerifiedAt       *time.Time
	VerifiedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (VendorSubscription) TableName() string {
	return "vendor_subscriptions"
}
