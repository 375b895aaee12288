package account

import (
	"fmt"
	"time"
)

// Status represents the lifecycle status of an account
type Status string

const (
	StatusActive      Status = "active"
	StatusDeactivated Status = "deactivated"
	StatusSuspended   Status = "suspended"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDeactivated, StatusSuspended:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// MembershipStatus represents the state of a household membership
type MembershipStatus string

const (
	MembershipAccepted MembershipStatus = "accepted"
	MembershipPending  MembershipStatus = "pending"
	MembershipRemoved  MembershipStatus = "removed"
)

// IsValid checks if the membership status is a known value
func (m MembershipStatus) IsValid() bool {
	switch m {
	case MembershipAccepted, MembershipPending, MembershipRemoved:
		return true
	}
	return false
}

// Account represents a subscriber identity. It is owned by the identity
// store and read-only to the admission engine.
type Account struct {
	id               uint
	status           Status
	emailVerified    bool
	householdOwnerID *uint
	membershipStatus MembershipStatus
	legacyTrialUntil *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// ReconstructAccount reconstructs an account from persistence
func ReconstructAccount(
	id uint,
	status Status,
	emailVerified bool,
	householdOwnerID *uint,
	membershipStatus MembershipStatus,
	legacyTrialUntil *time.Time,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid account status: %s", status)
	}
	if householdOwnerID != nil && !membershipStatus.IsValid() {
		return nil, fmt.Errorf("invalid membership status: %s", membershipStatus)
	}

	return &Account{
		id:               id,
		status:           status,
		emailVerified:    emailVerified,
		householdOwnerID: householdOwnerID,
		membershipStatus: membershipStatus,
		legacyTrialUntil: legacyTrialUntil,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// ID returns the account ID
func (a *Account) ID() uint {
	return a.id
}

// Status returns the account status
func (a *Account) Status() Status {
	return a.status
}

// IsActive reports whether the account may start playback at all
func (a *Account) IsActive() bool {
	return a.status == StatusActive
}

// EmailVerified returns the verification flag
func (a *Account) EmailVerified() bool {
	return a.emailVerified
}

// HouseholdOwnerID returns the household owner reference, nil when the
// account does not belong to a household.
func (a *Account) HouseholdOwnerID() *uint {
	return a.householdOwnerID
}

// HasAcceptedMembership reports whether the account is an accepted member
// of a household. Pending or removed members never inherit a family plan.
func (a *Account) HasAcceptedMembership() bool {
	return a.householdOwnerID != nil && a.membershipStatus == MembershipAccepted
}

// LegacyTrialUntil returns the grandfathered legacy-plan trial deadline,
// nil when the account carries no legacy marker.
func (a *Account) LegacyTrialUntil() *time.Time {
	return a.legacyTrialUntil
}

// CreatedAt returns when the account was created
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the account was last updated
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}
