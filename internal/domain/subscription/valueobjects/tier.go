package valueobjects

// PlanTier identifies the commercial tier of a plan. The tier decides
// paywall access and whether device/stream limits are household-wide.
type PlanTier string

const (
	TierFree     PlanTier = "free"
	TierTrial    PlanTier = "trial"
	TierBasic    PlanTier = "basic"
	TierStandard PlanTier = "standard"
	TierPremium  PlanTier = "premium"
	TierFamily   PlanTier = "family"
)

// IsValid checks if the tier is a known value
func (t PlanTier) IsValid() bool {
	switch t {
	case TierFree, TierTrial, TierBasic, TierStandard, TierPremium, TierFamily:
		return true
	}
	return false
}

// String returns the string representation
func (t PlanTier) String() string {
	return string(t)
}

// IsFamily reports whether the tier shares its limits across a household
func (t PlanTier) IsFamily() bool {
	return t == TierFamily
}

// IsFreeOrTrial reports whether the tier is barred from paywalled titles
func (t PlanTier) IsFreeOrTrial() bool {
	return t == TierFree || t == TierTrial
}
