package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/domain/account"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/subscription"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

const legacyTrialSlug = "legacy-trial"

// TrialLimits bounds the synthetic entitlement granted to grandfathered
// legacy-plan accounts inside their trial window.
type TrialLimits struct {
	MaxDevices int
	MaxStreams int
}

// Resolver computes the effective entitlement for an account: own
// subscription first, then family inheritance from the household owner,
// then the legacy trial marker. It is a pure read with a cache in front;
// absence is reported as entitlement.ErrNoEntitlement.
type Resolver struct {
	accounts account.Repository
	subs     subscription.Repository
	plans    subscription.PlanRepository
	cache    Cache
	clock    clock.Clock
	trial    TrialLimits
	logger   logger.Interface
}

// NewResolver creates a new entitlement resolver. The cache may be nil.
func NewResolver(
	accounts account.Repository,
	subs subscription.Repository,
	plans subscription.PlanRepository,
	cache Cache,
	clk clock.Clock,
	trial TrialLimits,
	log logger.Interface,
) *Resolver {
	return &Resolver{
		accounts: accounts,
		subs:     subs,
		plans:    plans,
		cache:    cache,
		clock:    clk,
		trial:    trial,
		logger:   log,
	}
}

// Resolve implements entitlement.Resolver
func (r *Resolver) Resolve(ctx context.Context, accountID uint) (*entitlement.Entitlement, error) {
	if cached := r.fromCache(ctx, accountID); cached != nil {
		if cached.Absent {
			return nil, entitlement.ErrNoEntitlement
		}
		return cached.Entitlement, nil
	}

	ent, err := r.resolve(ctx, accountID)
	if err != nil {
		if errors.Is(err, entitlement.ErrNoEntitlement) {
			r.cacheAbsent(ctx, accountID)
		}
		return nil, err
	}

	r.cacheSet(ctx, accountID, ent)
	return ent, nil
}

func (r *Resolver) resolve(ctx context.Context, accountID uint) (*entitlement.Entitlement, error) {
	acct, err := r.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, entitlement.ErrNoEntitlement
		}
		return nil, fmt.Errorf("failed to load account %d: %w", accountID, err)
	}

	now := r.clock.Now().UTC()

	// 1. Own subscription
	ent, err := r.resolveOwn(ctx, acct, now)
	if err != nil {
		return nil, err
	}
	if ent != nil {
		return ent, nil
	}

	// 2. Family inheritance from the household owner
	ent, err = r.resolveFamily(ctx, acct, now)
	if err != nil {
		return nil, err
	}
	if ent != nil {
		return ent, nil
	}

	// 3. Grandfathered legacy trial
	if until := acct.LegacyTrialUntil(); until != nil && now.Before(*until) {
		return &entitlement.Entitlement{
			AccountID:  acct.ID(),
			PlanSlug:   legacyTrialSlug,
			Tier:       vo.TierTrial,
			Source:     entitlement.SourceLegacyTrial,
			MaxDevices: r.trial.MaxDevices,
			MaxStreams: r.trial.MaxStreams,
			ExpiresAt:  *until,
		}, nil
	}

	return nil, entitlement.ErrNoEntitlement
}

func (r *Resolver) resolveOwn(ctx context.Context, acct *account.Account, now time.Time) (*entitlement.Entitlement, error) {
	sub, err := r.subs.GetActiveByAccountID(ctx, acct.ID())
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load subscription for account %d: %w", acct.ID(), err)
	}
	if !sub.IsUsableAt(now) {
		return nil, nil
	}

	plan, err := r.plans.GetByID(ctx, sub.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", sub.PlanID(), err)
	}

	return &entitlement.Entitlement{
		AccountID:     acct.ID(),
		PlanID:        plan.ID(),
		PlanSlug:      plan.Slug(),
		Tier:          plan.Tier(),
		Source:        entitlement.SourceOwnSubscription,
		MaxDevices:    plan.MaxDevices(),
		MaxStreams:    plan.MaxStreams(),
		DeviceClasses: plan.DeviceClasses(),
		ExpiresAt:     sub.EndDate(),
	}, nil
}

func (r *Resolver) resolveFamily(ctx context.Context, acct *account.Account, now time.Time) (*entitlement.Entitlement, error) {
	// Only accepted, active members inherit. Households are exactly one
	// level deep: the owner's own household link, if any, is never chased.
	if !acct.HasAcceptedMembership() || !acct.IsActive() {
		return nil, nil
	}
	ownerID := *acct.HouseholdOwnerID()

	ownerSub, err := r.subs.GetActiveByAccountID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load owner subscription for household %d: %w", ownerID, err)
	}
	if !ownerSub.IsUsableAt(now) {
		return nil, nil
	}

	plan, err := r.plans.GetByID(ctx, ownerSub.PlanID())
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", ownerSub.PlanID(), err)
	}
	if !plan.Tier().IsFamily() {
		return nil, nil
	}

	return &entitlement.Entitlement{
		AccountID:      acct.ID(),
		PlanID:         plan.ID(),
		PlanSlug:       plan.Slug(),
		Tier:           plan.Tier(),
		Source:         entitlement.SourceFamilyShared,
		MaxDevices:     plan.MaxDevices(),
		MaxStreams:     plan.MaxStreams(),
		DeviceClasses:  plan.DeviceClasses(),
		ExpiresAt:      ownerSub.EndDate(),
		IsFamilyShared: true,
		FamilyOwnerID:  &ownerID,
	}, nil
}

func (r *Resolver) fromCache(ctx context.Context, accountID uint) *CachedEntitlement {
	if r.cache == nil {
		return nil
	}
	cached, err := r.cache.Get(ctx, accountID)
	if err != nil {
		r.logger.Warnw("entitlement cache read failed", "account_id", accountID, "error", err)
		return nil
	}
	if cached == nil || cached.Absent {
		return cached
	}
	// a subscription can lapse mid-TTL; a cached entitlement that is no
	// longer in force is a miss, not a grant
	if cached.Entitlement == nil || !cached.Entitlement.IsUsableAt(r.clock.Now().UTC()) {
		return nil
	}
	return cached
}

func (r *Resolver) cacheSet(ctx context.Context, accountID uint, ent *entitlement.Entitlement) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, accountID, ent); err != nil {
		r.logger.Warnw("entitlement cache write failed", "account_id", accountID, "error", err)
	}
}

func (r *Resolver) cacheAbsent(ctx context.Context, accountID uint) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetAbsent(ctx, accountID); err != nil {
		r.logger.Warnw("entitlement cache absent-marker write failed", "account_id", accountID, "error", err)
	}
}
