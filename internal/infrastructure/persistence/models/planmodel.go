package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// PlanModel represents the database persistence model for plans. Device
// classes are a JSON array of class names; an empty or null array means
// every class is supported.
type PlanModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"not null;size:100"`
	Slug          string `gorm:"uniqueIndex;not null;size:100"`
	Tier          string `gorm:"not null;size:20;index:idx_plan_tier"`
	MaxDevices    int    `gorm:"not null"`
	MaxStreams    int    `gorm:"not null"`
	DeviceClasses datatypes.JSON
	Status        string `gorm:"not null;size:20;default:active"`
	SortOrder     int    `gorm:"default:0"`
	Version       int    `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
