package playback

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
)

// SessionStatus represents the lifecycle of a device session slot
type SessionStatus string

const (
	SessionStatusActive SessionStatus = "active"
	SessionStatusClosed SessionStatus = "closed"
)

// DeviceSession is one registry entry per (scope, device) pair. A scope
// is the account ID, or the household owner ID for family-shared plans.
// The session is refreshed on every admitted request and soft-closed when
// evicted to make room for a new device.
type DeviceSession struct {
	id             string
	scopeID        uint
	accountID      uint
	deviceID       string
	deviceType     vo.DeviceClass
	status         SessionStatus
	lastActivityAt time.Time
	createdAt      time.Time
	closedAt       *time.Time
}

// NewDeviceSession creates a new active session for a device claiming a slot
func NewDeviceSession(scopeID, accountID uint, deviceID string, deviceType vo.DeviceClass, now time.Time) (*DeviceSession, error) {
	if scopeID == 0 {
		return nil, fmt.Errorf("scope ID is required")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if deviceID == "" {
		return nil, fmt.Errorf("device ID is required")
	}
	if !deviceType.IsValid() {
		return nil, fmt.Errorf("invalid device type: %s", deviceType)
	}

	return &DeviceSession{
		id:             uuid.NewString(),
		scopeID:        scopeID,
		accountID:      accountID,
		deviceID:       deviceID,
		deviceType:     deviceType,
		status:         SessionStatusActive,
		lastActivityAt: now,
		createdAt:      now,
	}, nil
}

// ReconstructDeviceSession reconstructs a session from persistence
func ReconstructDeviceSession(
	id string,
	scopeID, accountID uint,
	deviceID string,
	deviceType vo.DeviceClass,
	status SessionStatus,
	lastActivityAt, createdAt time.Time,
	closedAt *time.Time,
) (*DeviceSession, error) {
	if id == "" {
		return nil, fmt.Errorf("session ID cannot be empty")
	}
	if scopeID == 0 {
		return nil, fmt.Errorf("scope ID is required")
	}
	if status != SessionStatusActive && status != SessionStatusClosed {
		return nil, fmt.Errorf("invalid session status: %s", status)
	}

	return &DeviceSession{
		id:             id,
		scopeID:        scopeID,
		accountID:      accountID,
		deviceID:       deviceID,
		deviceType:     deviceType,
		status:         status,
		lastActivityAt: lastActivityAt,
		createdAt:      createdAt,
		closedAt:       closedAt,
	}, nil
}

// ID returns the session ID
func (s *DeviceSession) ID() string {
	return s.id
}

// ScopeID returns the slot-accounting scope
func (s *DeviceSession) ScopeID() uint {
	return s.scopeID
}

// AccountID returns the account that registered the device
func (s *DeviceSession) AccountID() uint {
	return s.accountID
}

// DeviceID returns the device identifier
func (s *DeviceSession) DeviceID() string {
	return s.deviceID
}

// DeviceType returns the device class
func (s *DeviceSession) DeviceType() vo.DeviceClass {
	return s.deviceType
}

// Status returns the session status
func (s *DeviceSession) Status() SessionStatus {
	return s.status
}

// LastActivityAt returns the last admitted activity instant
func (s *DeviceSession) LastActivityAt() time.Time {
	return s.lastActivityAt
}

// CreatedAt returns when the slot was first claimed
func (s *DeviceSession) CreatedAt() time.Time {
	return s.createdAt
}

// ClosedAt returns when the session was evicted, nil while active
func (s *DeviceSession) ClosedAt() *time.Time {
	return s.closedAt
}

// Refresh marks activity now, keeping the slot warm
func (s *DeviceSession) Refresh(now time.Time) {
	s.lastActivityAt = now
}

// Close soft-closes the session. The evicted device keeps whatever it was
// doing; only its slot is released.
func (s *DeviceSession) Close(now time.Time) {
	if s.status == SessionStatusClosed {
		return
	}
	s.status = SessionStatusClosed
	s.closedAt = &now
}

// IsActiveWithin reports whether the session saw activity inside the
// inactivity window. Open sessions outside it are stale and evictable.
func (s *DeviceSession) IsActiveWithin(window time.Duration, now time.Time) bool {
	if s.status != SessionStatusActive {
		return false
	}
	return s.lastActivityAt.After(now.Add(-window))
}
