package content

import (
	"fmt"
	"time"
)

// Status represents the publication status of a title
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Visibility represents who can reach a title at all
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Record represents a catalog title as seen by the admission engine.
// It is owned by the content store and read-only here.
type Record struct {
	id           uint
	title        string
	status       Status
	visibility   Visibility
	ageRating    AgeRating
	categories   []Category
	geoRules     GeoRules
	rightsWindow RightsWindow
	paywallFee   uint64
	createdAt    time.Time
	updatedAt    time.Time
}

// Category is a content category with a display name and a slug
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ReconstructRecord reconstructs a content record from persistence
func ReconstructRecord(
	id uint,
	title string,
	status Status,
	visibility Visibility,
	ageRating AgeRating,
	categories []Category,
	geoRules GeoRules,
	rightsWindow RightsWindow,
	paywallFee uint64,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("content ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid content status: %s", status)
	}
	if visibility != VisibilityPublic && visibility != VisibilityPrivate {
		return nil, fmt.Errorf("invalid content visibility: %s", visibility)
	}

	return &Record{
		id:           id,
		title:        title,
		status:       status,
		visibility:   visibility,
		ageRating:    ageRating,
		categories:   categories,
		geoRules:     geoRules,
		rightsWindow: rightsWindow,
		paywallFee:   paywallFee,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the content ID
func (r *Record) ID() uint {
	return r.id
}

// Title returns the display title
func (r *Record) Title() string {
	return r.title
}

// Status returns the publication status
func (r *Record) Status() Status {
	return r.status
}

// Visibility returns the visibility
func (r *Record) Visibility() Visibility {
	return r.visibility
}

// IsWatchable reports whether the title is reachable at all: published
// and public. Everything else behaves as not found.
func (r *Record) IsWatchable() bool {
	return r.status == StatusPublished && r.visibility == VisibilityPublic
}

// AgeRating returns the maturity rating
func (r *Record) AgeRating() AgeRating {
	return r.ageRating
}

// Categories returns the content categories
func (r *Record) Categories() []Category {
	return r.categories
}

// GeoRules returns the regional licensing rule set
func (r *Record) GeoRules() GeoRules {
	return r.geoRules
}

// RightsWindow returns the license active-window
func (r *Record) RightsWindow() RightsWindow {
	return r.rightsWindow
}

// PaywallFee returns the paywall fee in minor currency units; zero means
// the title is included in every paid tier.
func (r *Record) PaywallFee() uint64 {
	return r.paywallFee
}

// CreatedAt returns when the record was created
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the record was last updated
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}
