package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// ProfileRestrictionModel represents the database persistence model for
// profile viewing restrictions. Window minutes count from midnight in
// the configured restriction timezone; null start and end means the
// window is not configured.
type ProfileRestrictionModel struct {
	ID                uint   `gorm:"primarykey"`
	ProfileID         uint   `gorm:"uniqueIndex;not null"`
	MaxAgeRating      string `gorm:"not null;size:10;default:all"`
	BlockedCategories datatypes.JSON
	AllowedStart      *int
	AllowedEnd        *int
	BedtimeStart      *int
	BedtimeEnd        *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProfileRestrictionModel) TableName() string {
	return constants.TableProfileRestrictions
}
