package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BookingStatusChange struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ChangedBy uuid.UUID `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

type Booking struct {
	Id            uuid.UUID                               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId    uuid.UUID                               `gorm:"type:uuid;not null;index"`
	VendorId      uuid.UUID                               `gorm:"type:uuid;not null;index"`
	ServiceId     uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Status        string                                  `gorm:"type:varchar(20);not null;default:'pending';index"`
	ScheduledAt   time.Time                               `gorm:"not null"`
	Address       string                                  `gorm:"type:text"`
	Notes         string                                  `gorm:"type:text"`
	StatusHistory datatypes.JSONSlice[BookingStatusChange] `gorm:"type:jsonb"`
	CreatedAt     time.Time                               `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                               `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}

type Service struct {
	Id          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category    string          `gorm:"type:varchar(100);index"`
	Description string          `gorm:"type:text"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsActive    bool            `gorm:"default:true"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (Service) TableName() string {
	return "services"
}
