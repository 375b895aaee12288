package profile

import "context"

// OverrideRepository defines read access to parental overrides
type OverrideRepository interface {
	// GetByProfileAndContent returns the override for the pair, or
	// ErrOverrideNotFound when none was granted.
	GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*ParentalOverride, error)
}

// RestrictionRepository defines read access to profile restrictions
type RestrictionRepository interface {
	// GetByProfileID returns the restriction attached to a profile, or
	// ErrRestrictionNotFound for unrestricted profiles.
	GetByProfileID(ctx context.Context, profileID uint) (*Restriction, error)
}
