package entitlement

import "context"

// Resolver computes the effective entitlement for an account.
//
// Resolution order, first match wins:
//  1. an unexpired, non-cancelled subscription owned by the account
//  2. the household owner's family-tier plan, when the account is an
//     accepted household member
//  3. a synthetic legacy-trial entitlement while the account's
//     grandfathered trial marker is unexpired
//
// Absence is a normal outcome, reported as ErrNoEntitlement, never as an
// infrastructure error.
type Resolver interface {
	Resolve(ctx context.Context, accountID uint) (*Entitlement, error)
}
