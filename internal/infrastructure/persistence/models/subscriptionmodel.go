package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions.
type SubscriptionModel struct {
	ID           uint      `gorm:"primarykey"`
	AccountID    uint      `gorm:"not null;index:idx_account_subscription"`
	PlanID       uint      `gorm:"not null;index:idx_plan_subscription"`
	Status       string    `gorm:"not null;size:20;index:idx_subscription_status"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null;index:idx_end_date"`
	AutoRenew    bool      `gorm:"default:false"`
	CancelledAt  *time.Time
	CancelReason *string `gorm:"size:500"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
