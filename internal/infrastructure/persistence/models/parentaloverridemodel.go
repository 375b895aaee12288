package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// ParentalOverrideModel represents the database persistence model for
// per-title parental overrides.
type ParentalOverrideModel struct {
	ID        uint `gorm:"primarykey"`
	ProfileID uint `gorm:"not null;uniqueIndex:idx_override_pair,priority:1"`
	ContentID uint `gorm:"not null;uniqueIndex:idx_override_pair,priority:2"`
	GrantedBy uint `gorm:"not null"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ParentalOverrideModel) TableName() string {
	return constants.TableParentalOverrides
}
