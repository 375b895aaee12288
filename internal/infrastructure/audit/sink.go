package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/goroutine"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

const writeTimeout = 5 * time.Second

// GormAuditSink appends admission decisions to the audit table. Writes
// run on their own goroutine with a detached context: a slow or broken
// audit store must never delay or change a decision.
type GormAuditSink struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewGormAuditSink creates a new gorm audit sink
func NewGormAuditSink(db *gorm.DB, log logger.Interface) admission.AuditSink {
	return &GormAuditSink{
		db:     db,
		logger: log,
	}
}

// Record persists the event asynchronously, fire-and-forget
func (s *GormAuditSink) Record(_ context.Context, event admission.AuditEvent) {
	goroutine.SafeGo(s.logger, "audit-record", func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		row := &models.AdmissionAuditModel{
			AccountID: event.AccountID,
			ContentID: event.ContentID,
			DeviceID:  event.DeviceID,
			Granted:   event.Granted,
			Code:      event.Code.String(),
			Message:   event.Message,
			SessionID: event.SessionID,
			DecidedAt: event.DecidedAt,
		}
		if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
			s.logger.Errorw("failed to record admission audit event",
				"error", err,
				"account_id", event.AccountID,
				"content_id", event.ContentID,
			)
		}
	})
}
