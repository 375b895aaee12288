package guards

import (
	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
)

// ContentRightsGuard enforces a title's license active-window and paywall
// tier, independent of viewer identity.
type ContentRightsGuard struct {
	clock clock.Clock
}

// NewContentRightsGuard creates a new content rights guard
func NewContentRightsGuard(clk clock.Clock) *ContentRightsGuard {
	return &ContentRightsGuard{clock: clk}
}

// Policy returns the guard's failure policy. License enforcement is a
// soft business rule; availability outranks it.
func (g *ContentRightsGuard) Policy() admission.FailurePolicy {
	return admission.FailOpen
}

// Check denies titles outside their license window and paywalled titles
// for free or trial tiers.
func (g *ContentRightsGuard) Check(rec *content.Record, ent *entitlement.Entitlement) admission.Result {
	now := g.clock.Now().UTC()
	window := rec.RightsWindow()

	if !window.Start.IsZero() && now.Before(window.Start) {
		return admission.Denied(
			admission.CodeContentRightsRestricted,
			"this title is not yet available",
			map[string]any{"reason": "not_yet_licensed", "licensed_from": window.Start},
		)
	}
	if !window.End.IsZero() && !now.Before(window.End) {
		return admission.Denied(
			admission.CodeContentRightsRestricted,
			"this title is no longer available",
			map[string]any{"reason": "license_lapsed", "licensed_until": window.End},
		)
	}

	if rec.PaywallFee() > 0 && ent.Tier.IsFreeOrTrial() {
		return admission.Denied(
			admission.CodeContentRightsRestricted,
			"this title requires a paid plan",
			map[string]any{"reason": "paywalled", "tier": ent.Tier.String()},
		)
	}

	return admission.Allow()
}
