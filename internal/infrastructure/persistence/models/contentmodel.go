package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// ContentModel represents the database persistence model for catalog
// titles. Categories and geo rules are JSON documents owned by the
// catalog service; the admission engine only reads them.
type ContentModel struct {
	ID               uint   `gorm:"primarykey"`
	Title            string `gorm:"not null;size:255"`
	Status           string `gorm:"not null;size:20;index:idx_content_status"`
	Visibility       string `gorm:"not null;size:20;default:public"`
	AgeRating        string `gorm:"not null;size:10;default:all"`
	Categories       datatypes.JSON
	IsGeorestricted  bool `gorm:"not null;default:false"`
	AllowedRegions   datatypes.JSON
	BlockedCountries datatypes.JSON
	RightsStart      *time.Time `gorm:"index:idx_rights_start"`
	RightsEnd        *time.Time `gorm:"index:idx_rights_end"`
	PaywallFee       uint64     `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ContentModel) TableName() string {
	return constants.TableContents
}
