package profile

import "errors"

var (
	// ErrOverrideNotFound is returned when no parental override exists
	ErrOverrideNotFound = errors.New("parental override not found")

	// ErrRestrictionNotFound is returned when a profile has no restriction
	ErrRestrictionNotFound = errors.New("profile restriction not found")
)
