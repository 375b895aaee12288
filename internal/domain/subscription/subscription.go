package subscription

import (
	"fmt"
	"time"

	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
)

// Subscription represents the subscription aggregate root
type Subscription struct {
	id           uint
	accountID    uint
	planID       uint
	status       vo.SubscriptionStatus
	startDate    time.Time
	endDate      time.Time
	autoRenew    bool
	cancelledAt  *time.Time
	cancelReason *string
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewSubscription creates a new subscription
func NewSubscription(accountID, planID uint, startDate, endDate time.Time, autoRenew bool) (*Subscription, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := time.Now()
	return &Subscription{
		accountID: accountID,
		planID:    planID,
		status:    vo.StatusActive,
		startDate: startDate,
		endDate:   endDate,
		autoRenew: autoRenew,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, accountID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	autoRenew bool,
	cancelledAt *time.Time,
	cancelReason *string,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:           id,
		accountID:    accountID,
		planID:       planID,
		status:       status,
		startDate:    startDate,
		endDate:      endDate,
		autoRenew:    autoRenew,
		cancelledAt:  cancelledAt,
		cancelReason: cancelReason,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the subscription ID
func (s *Subscription) ID() uint {
	return s.id
}

// AccountID returns the owning account ID
func (s *Subscription) AccountID() uint {
	return s.accountID
}

// PlanID returns the plan ID
func (s *Subscription) PlanID() uint {
	return s.planID
}

// Status returns the subscription status
func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

// StartDate returns the subscription start date
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// EndDate returns the subscription end date
func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

// AutoRenew returns the auto-renew setting
func (s *Subscription) AutoRenew() bool {
	return s.autoRenew
}

// CancelledAt returns when the subscription was cancelled
func (s *Subscription) CancelledAt() *time.Time {
	return s.cancelledAt
}

// Version returns the aggregate version
func (s *Subscription) Version() int {
	return s.version
}

// CreatedAt returns when the subscription was created
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the subscription was last updated
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsUsableAt reports whether the subscription grants an entitlement at the
// given instant: active status and within the paid period.
func (s *Subscription) IsUsableAt(now time.Time) bool {
	if s.status != vo.StatusActive {
		return false
	}
	if now.Before(s.startDate) {
		return false
	}
	if !now.Before(s.endDate) {
		return false
	}
	return true
}
