package profile

import (
	"github.com/vistream-io/vistream/internal/domain/content"
)

// Restriction captures the viewing limits attached to a kid or
// time-limited profile.
type Restriction struct {
	// MaxAgeRating is the rating ceiling for the profile.
	MaxAgeRating content.AgeRating `json:"max_age_rating"`
	// BlockedCategories are profile-specific category blocks, applied on
	// top of the engine's fixed kid-safety denylist.
	BlockedCategories []string `json:"blocked_categories"`
	// Allowed is the only time-of-day range during which access is
	// permitted. A nil window means access at any hour.
	Allowed *ClockWindow `json:"allowed,omitempty"`
	// Bedtime is a curfew range during which access is denied. It takes
	// precedence over Allowed when both are configured.
	Bedtime *ClockWindow `json:"bedtime,omitempty"`
}

// ContextKind tags the profile context variants
type ContextKind string

const (
	// ContextNone means an unrestricted adult profile; the minor content
	// gate and temporal guard are skipped entirely.
	ContextNone ContextKind = "none"
	// ContextKidProfile means a kid viewing profile on the account.
	ContextKidProfile ContextKind = "kid_profile"
	// ContextFamilyMemberKid means a household member account flagged as
	// a minor, restricted by the household owner.
	ContextFamilyMemberKid ContextKind = "family_member_kid"
)

// Context is the tagged variant describing who is watching. Both kid
// variants carry a profile ID and restrictions and are treated uniformly
// by the guards; the tag is preserved for auditing.
type Context struct {
	Kind        ContextKind  `json:"kind"`
	ProfileID   uint         `json:"profile_id,omitempty"`
	Restriction *Restriction `json:"restriction,omitempty"`
}

// NoContext returns the unrestricted variant
func NoContext() Context {
	return Context{Kind: ContextNone}
}

// KidProfileContext returns the kid-profile variant
func KidProfileContext(profileID uint, r *Restriction) Context {
	return Context{Kind: ContextKidProfile, ProfileID: profileID, Restriction: r}
}

// FamilyMemberKidContext returns the family-member-kid variant
func FamilyMemberKidContext(profileID uint, r *Restriction) Context {
	return Context{Kind: ContextFamilyMemberKid, ProfileID: profileID, Restriction: r}
}

// IsRestricted reports whether the context carries viewing restrictions
func (c Context) IsRestricted() bool {
	return c.Kind != ContextNone && c.Restriction != nil
}
