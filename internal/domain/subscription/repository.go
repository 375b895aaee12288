package subscription

import "context"

// Repository defines read access to the subscription store
type Repository interface {
	// GetActiveByAccountID returns the account's own current subscription,
	// or ErrSubscriptionNotFound when none exists.
	GetActiveByAccountID(ctx context.Context, accountID uint) (*Subscription, error)
}

// PlanRepository defines read access to the plan catalog
type PlanRepository interface {
	// GetByID returns the plan or ErrPlanNotFound.
	GetByID(ctx context.Context, id uint) (*Plan, error)
}
