package admission

import (
	"context"
	"time"
)

// AuditEvent is the record of one admission decision, granted or denied.
type AuditEvent struct {
	AccountID uint      `json:"account_id"`
	ContentID uint      `json:"content_id"`
	DeviceID  string    `json:"device_id"`
	Granted   bool      `json:"granted"`
	Code      DenyCode  `json:"code,omitempty"`
	Message   string    `json:"message,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

// AuditSink records decisions fire-and-forget: a sink failure must never
// change the decision or delay the caller.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent)
}
