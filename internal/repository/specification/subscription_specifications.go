package specification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByVendor struct {
	VendorID uuid.UUID
}

func (s ByVendor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("vendor_id = ?", s.VendorID)
}

type ByPlan struct {
	PlanID uuid.UUID
}

func (s ByPlan) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plan_id = ?", s.PlanID)
}

type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

type PaymentStatusIs struct {
	Status string
}

func (s PaymentStatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.Status)
}

// OpenSubscription matches the subscription that blocks a vendor from subscribing again.
type OpenSubscription struct{}

func (s OpenSubscription) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", []string{"pending", "active"})
}

// Overdue matches active subscriptions whose end date is not after Now.
type Overdue struct {
	Now time.Time
}

func (s Overdue) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND end_date <= ?", "active", s.Now)
}

// VendorSearch matches subscriptions whose vendor name or email contains Query (case-insensitive).
type VendorSearch struct {
	Query string
}

func (s VendorSearch) Apply(db *gorm.DB) *gorm.DB {
	q := strings.TrimSpace(s.Query)
	if q == "" {
		return db
	}
	pattern := "%" + escapeLike(q) + "%"
	return db.Where(`vendor_id IN (SELECT id FROM users WHERE name ILIKE ? ESCAPE '\' OR email ILIKE ? ESCAPE '\')`, pattern, pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}
