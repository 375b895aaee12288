package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// AccountModel represents the database persistence model for accounts.
// This is the anti-corruption layer between domain and database.
type AccountModel struct {
	ID               uint   `gorm:"primarykey"`
	Status           string `gorm:"not null;size:20;index:idx_account_status"`
	EmailVerified    bool   `gorm:"not null;default:false"`
	HouseholdOwnerID *uint  `gorm:"index:idx_household_owner"`
	MembershipStatus string `gorm:"size:20"`
	LegacyTrialUntil *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}
