package entitlement

import (
	"time"

	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
)

// Source identifies where a resolved entitlement came from
type Source string

const (
	SourceOwnSubscription Source = "own_subscription"
	SourceFamilyShared    Source = "family_shared"
	SourceLegacyTrial     Source = "legacy_trial"
)

// IsValid checks if the source is a known value
func (s Source) IsValid() bool {
	switch s {
	case SourceOwnSubscription, SourceFamilyShared, SourceLegacyTrial:
		return true
	}
	return false
}

// String returns the string representation
func (s Source) String() string {
	return string(s)
}

// Entitlement is the resolved view of what an admission check must
// enforce for one account. It is computed fresh per check and never
// persisted as a row of truth.
type Entitlement struct {
	AccountID      uint             `json:"account_id"`
	PlanID         uint             `json:"plan_id"`
	PlanSlug       string           `json:"plan_slug"`
	Tier           vo.PlanTier      `json:"tier"`
	Source         Source           `json:"source"`
	MaxDevices     int              `json:"max_devices"`
	MaxStreams     int              `json:"max_streams"`
	DeviceClasses  []vo.DeviceClass `json:"device_classes"`
	ExpiresAt      time.Time        `json:"expires_at"`
	IsFamilyShared bool             `json:"is_family_shared"`
	FamilyOwnerID  *uint            `json:"family_owner_id,omitempty"`
}

// ScopeID returns the identity that device slots and stream heartbeats
// are counted against. For family-shared entitlements limits are
// household-wide, so the scope is the household owner.
func (e *Entitlement) ScopeID() uint {
	if e.IsFamilyShared && e.FamilyOwnerID != nil {
		return *e.FamilyOwnerID
	}
	return e.AccountID
}

// IsUsableAt reports whether the entitlement is still in force. A zero
// ExpiresAt never expires.
func (e *Entitlement) IsUsableAt(now time.Time) bool {
	return e.ExpiresAt.IsZero() || now.Before(e.ExpiresAt)
}

// SupportsDeviceClass reports whether the entitlement's plan admits the
// given device class. An empty class list admits everything.
func (e *Entitlement) SupportsDeviceClass(dc vo.DeviceClass) bool {
	if len(e.DeviceClasses) == 0 {
		return true
	}
	for _, c := range e.DeviceClasses {
		if c == dc {
			return true
		}
	}
	return false
}
