package content

import "time"

// RightsWindow is a title's license active-window: [Start, End).
// A zero Start means licensed from the beginning of time; a zero End
// means the license never lapses.
type RightsWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ActiveAt reports whether the license covers the given instant
func (w RightsWindow) ActiveAt(now time.Time) bool {
	if !w.Start.IsZero() && now.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !now.Before(w.End) {
		return false
	}
	return true
}
