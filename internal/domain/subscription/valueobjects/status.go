package valueobjects

// SubscriptionStatus represents the lifecycle status of a subscription
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
	StatusSuspended SubscriptionStatus = "suspended"
	StatusPastDue   SubscriptionStatus = "past_due"
)

// ValidStatuses is the set of known subscription statuses
var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
	StatusSuspended: true,
	StatusPastDue:   true,
}

// IsValid checks if the status is a known value
func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

// String returns the string representation
func (s SubscriptionStatus) String() string {
	return string(s)
}
