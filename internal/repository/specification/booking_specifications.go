package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCustomer struct {
	CustomerID uuid.UUID
}

func (s ByCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

type ByService struct {
	ServiceID uuid.UUID
}

func (s ByService) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_id = ?", s.ServiceID)
}
