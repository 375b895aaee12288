package account

import "context"

// Repository defines read access to the identity store. The admission
// engine never writes accounts.
type Repository interface {
	// GetByID returns the account or ErrAccountNotFound.
	GetByID(ctx context.Context, id uint) (*Account, error)
}
