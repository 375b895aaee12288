package content

import "context"

// Repository defines read access to the content store
type Repository interface {
	// GetByID returns the content record or ErrContentNotFound.
	GetByID(ctx context.Context, id uint) (*Record, error)
}
