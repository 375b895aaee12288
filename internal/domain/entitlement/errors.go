package entitlement

import "errors"

var (
	// ErrNoEntitlement is returned when resolution finds no usable plan.
	// It is an expected outcome, not an infrastructure fault.
	ErrNoEntitlement = errors.New("no entitlement")
)
