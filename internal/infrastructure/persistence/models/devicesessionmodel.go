package models

import (
	"time"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// DeviceSessionModel represents the database persistence model for
// device slot sessions. One row per (scope, device) pair; evicted rows
// are soft-closed in place rather than deleted so the registry keeps an
// eviction trail.
type DeviceSessionModel struct {
	ID             string    `gorm:"primarykey;size:36"`
	ScopeID        uint      `gorm:"not null;uniqueIndex:idx_scope_device,priority:1;index:idx_scope_activity,priority:1"`
	AccountID      uint      `gorm:"not null;index:idx_session_account"`
	DeviceID       string    `gorm:"not null;size:128;uniqueIndex:idx_scope_device,priority:2"`
	DeviceType     string    `gorm:"not null;size:20"`
	Status         string    `gorm:"not null;size:20;index:idx_scope_activity,priority:2"`
	LastActivityAt time.Time `gorm:"not null;index:idx_scope_activity,priority:3"`
	CreatedAt      time.Time
	ClosedAt       *time.Time
}

// TableName specifies the table name for GORM
func (DeviceSessionModel) TableName() string {
	return constants.TableDeviceSessions
}
