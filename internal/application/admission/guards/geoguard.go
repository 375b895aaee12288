package guards

import (
	"context"
	"fmt"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// GeoResolver resolves a network address to an ISO country code. An
// empty code with a nil error means the address could not be attributed
// to a country (private, loopback, or unknown ranges).
type GeoResolver interface {
	ResolveCountry(ctx context.Context, ipAddress string) (string, error)
}

// GeographicRightsGuard enforces a title's regional licensing against the
// country derived from the requester's network address.
type GeographicRightsGuard struct {
	resolver GeoResolver
	logger   logger.Interface
}

// NewGeographicRightsGuard creates a new geographic rights guard
func NewGeographicRightsGuard(resolver GeoResolver, log logger.Interface) *GeographicRightsGuard {
	return &GeographicRightsGuard{
		resolver: resolver,
		logger:   log,
	}
}

// Policy returns the guard's failure policy. Regional licensing fails
// open: an unavailable lookup never blocks playback.
func (g *GeographicRightsGuard) Policy() admission.FailurePolicy {
	return admission.FailOpen
}

// Check evaluates the title's geo rules. Unrestricted titles skip the
// lookup entirely; unresolvable addresses admit.
func (g *GeographicRightsGuard) Check(ctx context.Context, rules content.GeoRules, requestIP string) (admission.Result, error) {
	if !rules.IsGeorestricted {
		return admission.Allow(), nil
	}

	country, err := g.resolver.ResolveCountry(ctx, requestIP)
	if err != nil {
		return admission.Result{}, fmt.Errorf("country resolution failed for %q: %w", requestIP, err)
	}
	if country == "" {
		return admission.Allow(), nil
	}

	if !rules.PermitsCountry(country) {
		return admission.Denied(
			admission.CodeGeoRestricted,
			"this title is not available in your region",
			map[string]any{"country": country},
		), nil
	}

	return admission.Allow(), nil
}
