package models

import (
	"time"

	"github.com/vistream-io/vistream/internal/shared/constants"
)

// AdmissionAuditModel represents the database persistence model for
// admission decision audit rows. Append-only.
type AdmissionAuditModel struct {
	ID        uint      `gorm:"primarykey"`
	AccountID uint      `gorm:"not null;index:idx_audit_account"`
	ContentID uint      `gorm:"not null;index:idx_audit_content"`
	DeviceID  string    `gorm:"not null;size:128"`
	Granted   bool      `gorm:"not null"`
	Code      string    `gorm:"size:40;index:idx_audit_code"`
	Message   string    `gorm:"size:500"`
	SessionID string    `gorm:"size:36"`
	DecidedAt time.Time `gorm:"not null;index:idx_audit_decided_at"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (AdmissionAuditModel) TableName() string {
	return constants.TableAdmissionAudits
}
