package admission

import (
	"time"

	"github.com/vistream-io/vistream/internal/domain/entitlement"
)

// DenyCode is the stable machine-readable reason for a denial
type DenyCode string

const (
	CodeSubscriptionRequired       DenyCode = "SUBSCRIPTION_REQUIRED"
	CodePlanRestriction            DenyCode = "PLAN_RESTRICTION"
	CodeDeviceLimitReached         DenyCode = "DEVICE_LIMIT_REACHED"
	CodeStreamLimitReached         DenyCode = "STREAM_LIMIT_REACHED"
	CodeKidContentRestricted       DenyCode = "KID_CONTENT_RESTRICTED"
	CodeContentCategoryRestricted  DenyCode = "CONTENT_CATEGORY_RESTRICTED"
	CodeTimeRestriction            DenyCode = "TIME_RESTRICTION"
	CodeGeoRestricted              DenyCode = "GEO_RESTRICTED"
	CodeContentRightsRestricted    DenyCode = "CONTENT_RIGHTS_RESTRICTED"
	CodeContentNotFound            DenyCode = "CONTENT_NOT_FOUND"
	CodeUserInactive               DenyCode = "USER_INACTIVE"
	CodeSystemError                DenyCode = "SYSTEM_ERROR"
)

// String returns the string representation
func (c DenyCode) String() string {
	return string(c)
}

// Decision is the outcome of one admission evaluation. It is the return
// value of a single check, always timestamped, and never persisted as a
// row of truth (the audit sink logs it separately).
type Decision struct {
	Granted     bool                     `json:"granted"`
	Code        DenyCode                 `json:"code,omitempty"`
	Message     string                   `json:"message,omitempty"`
	Details     map[string]any           `json:"details,omitempty"`
	Entitlement *entitlement.Entitlement `json:"entitlement,omitempty"`
	SessionID   string                   `json:"session_id,omitempty"`
	DecidedAt   time.Time                `json:"decided_at"`
}

// Grant builds a granted decision carrying the resolved entitlement
// snapshot and the admitted device session identifier.
func Grant(ent *entitlement.Entitlement, sessionID string, now time.Time) Decision {
	return Decision{
		Granted:     true,
		Entitlement: ent,
		SessionID:   sessionID,
		DecidedAt:   now,
	}
}

// Deny builds a denied decision with a stable code and a message safe for
// direct display.
func Deny(code DenyCode, message string, details map[string]any, now time.Time) Decision {
	return Decision{
		Granted:   false,
		Code:      code,
		Message:   message,
		Details:   details,
		DecidedAt: now,
	}
}
