package dto

import (
	"time"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
)

// CheckAdmissionRequest carries one playback admission check.
type CheckAdmissionRequest struct {
	AccountID   uint   `json:"account_id" binding:"required"`
	ContentID   uint   `json:"content_id" binding:"required"`
	DeviceID    string `json:"device_id" binding:"required"`
	DeviceType  string `json:"device_type" binding:"required,oneof=mobile tablet web tv console"`
	RequestIP   string `json:"request_ip"`
	ProfileKind string `json:"profile_kind" binding:"omitempty,oneof=none kid_profile family_member_kid"`
	ProfileID   uint   `json:"profile_id"`
}

// AdmissionResponse mirrors an admission decision for transport.
type AdmissionResponse struct {
	Granted     bool                     `json:"granted"`
	Code        string                   `json:"code,omitempty"`
	Message     string                   `json:"message,omitempty"`
	Details     map[string]any           `json:"details,omitempty"`
	SessionID   string                   `json:"session_id,omitempty"`
	Entitlement *entitlement.Entitlement `json:"entitlement,omitempty"`
	DecidedAt   time.Time                `json:"decided_at"`
}

// FromDecision maps a decision to the transport shape
func FromDecision(d admission.Decision) *AdmissionResponse {
	return &AdmissionResponse{
		Granted:     d.Granted,
		Code:        d.Code.String(),
		Message:     d.Message,
		Details:     d.Details,
		SessionID:   d.SessionID,
		Entitlement: d.Entitlement,
		DecidedAt:   d.DecidedAt,
	}
}

// HeartbeatRequest refreshes a live playback marker mid-stream.
type HeartbeatRequest struct {
	AccountID uint `json:"account_id" binding:"required"`
	ContentID uint `json:"content_id" binding:"required"`
}
