package guards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/domain/profile"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// kidCategoryDenylist is the fixed set of categories considered unsafe
// for kid-mode profiles, matched case-insensitively as substrings of the
// category name or slug.
var kidCategoryDenylist = []string{
	"horror",
	"thriller",
	"crime",
	"war",
	"mature",
}

// MinorContentGate enforces the age-rating ceiling and category denylist
// for restricted profiles, with a per-title parental override escape
// hatch. Both kid variants of the profile context are treated uniformly.
type MinorContentGate struct {
	overrides profile.OverrideRepository
	clock     clock.Clock
	logger    logger.Interface
}

// NewMinorContentGate creates a new minor content gate
func NewMinorContentGate(overrides profile.OverrideRepository, clk clock.Clock, log logger.Interface) *MinorContentGate {
	return &MinorContentGate{
		overrides: overrides,
		clock:     clk,
		logger:    log,
	}
}

// Policy returns the guard's failure policy. The gate protects minors,
// so lookup faults deny.
func (g *MinorContentGate) Policy() admission.FailurePolicy {
	return admission.FailClosed
}

// Check evaluates the content against the profile's restriction. A
// standing, unexpired parental override for the (profile, content) pair
// admits regardless of rating and category rules.
func (g *MinorContentGate) Check(ctx context.Context, pc profile.Context, rec *content.Record) (admission.Result, error) {
	if !pc.IsRestricted() {
		return admission.Allow(), nil
	}
	r := pc.Restriction

	ratingBlocked := rec.AgeRating().Rank() > 0 && rec.AgeRating().Exceeds(r.MaxAgeRating)
	blockedCategory := g.blockedCategory(rec, r)

	if !ratingBlocked && blockedCategory == "" {
		return admission.Allow(), nil
	}

	overridden, err := g.hasActiveOverride(ctx, pc.ProfileID, rec.ID())
	if err != nil {
		return admission.Result{}, err
	}
	if overridden {
		g.logger.Infow("parental override admitted restricted content",
			"profile_id", pc.ProfileID,
			"content_id", rec.ID(),
		)
		return admission.Allow(), nil
	}

	if ratingBlocked {
		return admission.Denied(
			admission.CodeKidContentRestricted,
			"this title is above the profile's age rating",
			map[string]any{
				"content_rating": rec.AgeRating().String(),
				"max_age_rating": r.MaxAgeRating.String(),
			},
		), nil
	}

	return admission.Denied(
		admission.CodeContentCategoryRestricted,
		"this title's category is not available on this profile",
		map[string]any{"category": blockedCategory},
	), nil
}

// blockedCategory returns the first content category hitting the fixed
// denylist or the profile's own blocks, or "" when none match.
func (g *MinorContentGate) blockedCategory(rec *content.Record, r *profile.Restriction) string {
	denylist := make([]string, 0, len(kidCategoryDenylist)+len(r.BlockedCategories))
	denylist = append(denylist, kidCategoryDenylist...)
	denylist = append(denylist, r.BlockedCategories...)

	for _, cat := range rec.Categories() {
		name := strings.ToLower(cat.Name)
		slug := strings.ToLower(cat.Slug)
		for _, blocked := range denylist {
			b := strings.ToLower(blocked)
			if b == "" {
				continue
			}
			if strings.Contains(name, b) || strings.Contains(slug, b) {
				return cat.Name
			}
		}
	}
	return ""
}

func (g *MinorContentGate) hasActiveOverride(ctx context.Context, profileID, contentID uint) (bool, error) {
	if profileID == 0 {
		return false, nil
	}
	override, err := g.overrides.GetByProfileAndContent(ctx, profileID, contentID)
	if err != nil {
		if errors.Is(err, profile.ErrOverrideNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("parental override lookup failed: %w", err)
	}
	return override.IsActiveAt(g.clock.Now().UTC()), nil
}
