package profile

import (
	"fmt"
	"time"
)

// ParentalOverride is a standing per-title exemption granted by a parent.
// While unexpired it admits the (profile, content) pair regardless of
// rating and category rules.
type ParentalOverride struct {
	id        uint
	profileID uint
	contentID uint
	grantedBy uint
	expiresAt *time.Time
	createdAt time.Time
}

// NewParentalOverride creates a new override
func NewParentalOverride(profileID, contentID, grantedBy uint, expiresAt *time.Time) (*ParentalOverride, error) {
	if profileID == 0 {
		return nil, fmt.Errorf("profile ID is required")
	}
	if contentID == 0 {
		return nil, fmt.Errorf("content ID is required")
	}
	if grantedBy == 0 {
		return nil, fmt.Errorf("granting account ID is required")
	}
	return &ParentalOverride{
		profileID: profileID,
		contentID: contentID,
		grantedBy: grantedBy,
		expiresAt: expiresAt,
		createdAt: time.Now(),
	}, nil
}

// ReconstructParentalOverride reconstructs an override from persistence
func ReconstructParentalOverride(id, profileID, contentID, grantedBy uint, expiresAt *time.Time, createdAt time.Time) (*ParentalOverride, error) {
	if id == 0 {
		return nil, fmt.Errorf("override ID cannot be zero")
	}
	if profileID == 0 {
		return nil, fmt.Errorf("profile ID is required")
	}
	if contentID == 0 {
		return nil, fmt.Errorf("content ID is required")
	}
	return &ParentalOverride{
		id:        id,
		profileID: profileID,
		contentID: contentID,
		grantedBy: grantedBy,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}, nil
}

// ID returns the override ID
func (o *ParentalOverride) ID() uint {
	return o.id
}

// ProfileID returns the profile the override applies to
func (o *ParentalOverride) ProfileID() uint {
	return o.profileID
}

// ContentID returns the content the override applies to
func (o *ParentalOverride) ContentID() uint {
	return o.contentID
}

// GrantedBy returns the granting account ID
func (o *ParentalOverride) GrantedBy() uint {
	return o.grantedBy
}

// ExpiresAt returns the expiry, nil for a standing override
func (o *ParentalOverride) ExpiresAt() *time.Time {
	return o.expiresAt
}

// CreatedAt returns when the override was granted
func (o *ParentalOverride) CreatedAt() time.Time {
	return o.createdAt
}

// IsActiveAt reports whether the override still applies at the instant
func (o *ParentalOverride) IsActiveAt(now time.Time) bool {
	return o.expiresAt == nil || now.Before(*o.expiresAt)
}
