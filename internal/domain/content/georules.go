package content

import "strings"

// GeoRules captures a title's regional licensing constraints. Countries
// are ISO 3166-1 alpha-2 codes, compared case-insensitively.
type GeoRules struct {
	IsGeorestricted  bool     `json:"is_georestricted"`
	AllowedRegions   []string `json:"allowed_regions"`
	BlockedCountries []string `json:"blocked_countries"`
}

// PermitsCountry evaluates the rule set against a resolved country code.
// An empty country (unresolvable address) always permits: regional
// licensing fails open rather than blocking playback on lookup gaps.
func (g GeoRules) PermitsCountry(country string) bool {
	if !g.IsGeorestricted || country == "" {
		return true
	}

	for _, blocked := range g.BlockedCountries {
		if strings.EqualFold(blocked, country) {
			return false
		}
	}

	if len(g.AllowedRegions) == 0 {
		return true
	}
	for _, allowed := range g.AllowedRegions {
		if strings.EqualFold(allowed, country) {
			return true
		}
	}
	return false
}
