package entitlement

import (
	"context"

	"github.com/vistream-io/vistream/internal/domain/entitlement"
)

// CachedEntitlement wraps a cache entry. Absent marks a confirmed
// no-entitlement result so repeated checks for unsubscribed accounts do
// not hammer the subscription store.
type CachedEntitlement struct {
	Entitlement *entitlement.Entitlement
	Absent      bool
}

// Cache is the explicit entitlement cache component. A nil result with a
// nil error is a cache miss. Invalidation must be called by any write
// path that changes an account's subscription or household membership.
type Cache interface {
	Get(ctx context.Context, accountID uint) (*CachedEntitlement, error)
	Set(ctx context.Context, accountID uint, ent *entitlement.Entitlement) error
	SetAbsent(ctx context.Context, accountID uint) error
	Invalidate(ctx context.Context, accountID uint) error
}
