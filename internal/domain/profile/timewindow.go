package profile

import "fmt"

// ClockWindow is a [Start, End) time-of-day range in minutes since
// midnight. A window whose Start is greater than its End crosses
// midnight.
type ClockWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

const minutesPerDay = 24 * 60

// NewClockWindow validates and creates a clock window
func NewClockWindow(start, end int) (ClockWindow, error) {
	if start < 0 || start >= minutesPerDay {
		return ClockWindow{}, fmt.Errorf("window start out of range: %d", start)
	}
	if end < 0 || end >= minutesPerDay {
		return ClockWindow{}, fmt.Errorf("window end out of range: %d", end)
	}
	return ClockWindow{Start: start, End: end}, nil
}

// Contains reports whether the instant t (minutes since midnight) falls
// inside the window. Windows crossing midnight wrap: [22:00, 06:00)
// contains 23:30 and 02:00 but not 12:00.
func (w ClockWindow) Contains(t int) bool {
	if w.Start <= w.End {
		return w.Start <= t && t < w.End
	}
	return t >= w.Start || t < w.End
}

// IsZero reports whether the window is unset
func (w ClockWindow) IsZero() bool {
	return w.Start == 0 && w.End == 0
}
