// Package biztime provides utilities for restriction-timezone calculations.
// All storage and transport use UTC. The restriction timezone is only used
// to evaluate viewer-facing time-of-day rules (curfew and allowed-hours
// windows), which are defined in the household's wall-clock time.
//
// Design principles:
// - All time storage is in UTC
// - Time-of-day evaluation must explicitly use the restriction timezone
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default restriction timezone.
	DefaultTimezone = "UTC"
)

var (
	restrictionLocation *time.Location
	locationOnce        sync.Once
	initErr             error
)

// Init initializes the restriction timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	locationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		restrictionLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the restriction timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize restriction timezone %q: %v", tz, err))
	}
}

// Location returns the restriction timezone location.
// If not explicitly initialized, automatically initializes with UTC.
func Location() *time.Location {
	if restrictionLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return restrictionLocation
}

// MinutesSinceMidnight converts an instant to minutes since midnight in
// loc. Curfew and allowed-hours windows are expressed in these units.
func MinutesSinceMidnight(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
