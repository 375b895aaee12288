package guards

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/profile"
	"github.com/vistream-io/vistream/internal/shared/biztime"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// TemporalAccessGuard enforces curfew and allowed-hours windows for
// restricted profiles. Windows are evaluated in the configured
// restriction timezone; a profile-level curfew takes precedence over a
// coarser allowed-hours window when both exist.
type TemporalAccessGuard struct {
	location *time.Location
	clock    clock.Clock
	logger   logger.Interface
}

// NewTemporalAccessGuard creates a new temporal access guard
func NewTemporalAccessGuard(location *time.Location, clk clock.Clock, log logger.Interface) *TemporalAccessGuard {
	return &TemporalAccessGuard{
		location: location,
		clock:    clk,
		logger:   log,
	}
}

// Policy returns the guard's failure policy. Time windows are a soft
// business rule; availability outranks them.
func (g *TemporalAccessGuard) Policy() admission.FailurePolicy {
	return admission.FailOpen
}

// Check evaluates the profile's time windows against the current
// wall-clock time-of-day. Unrestricted profiles always pass.
func (g *TemporalAccessGuard) Check(pc profile.Context) admission.Result {
	if !pc.IsRestricted() {
		return admission.Allow()
	}
	r := pc.Restriction

	nowMinutes := biztime.MinutesSinceMidnight(g.clock.Now(), g.location)

	if r.Bedtime != nil && r.Bedtime.Contains(nowMinutes) {
		return admission.Denied(
			admission.CodeTimeRestriction,
			"watching is paused during bedtime hours",
			map[string]any{
				"reason":        "curfew",
				"bedtime_start": r.Bedtime.Start,
				"bedtime_end":   r.Bedtime.End,
			},
		)
	}

	if r.Allowed != nil && !r.Allowed.Contains(nowMinutes) {
		return admission.Denied(
			admission.CodeTimeRestriction,
			"watching is only allowed during your permitted hours",
			map[string]any{
				"reason":        "outside_allowed_hours",
				"allowed_start": r.Allowed.Start,
				"allowed_end":   r.Allowed.End,
			},
		)
	}

	return admission.Allow()
}
