package content

import "errors"

var (
	// ErrContentNotFound is returned when a content record is not found
	ErrContentNotFound = errors.New("content not found")
)
