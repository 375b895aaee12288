package subscription

import "errors"

var (
	// ErrSubscriptionNotFound is returned when a subscription is not found
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrPlanNotFound is returned when a plan is not found
	ErrPlanNotFound = errors.New("plan not found")
)
