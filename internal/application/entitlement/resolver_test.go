package entitlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistream-io/vistream/internal/domain/account"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/subscription"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type fakeAccountRepo struct {
	accounts map[uint]*account.Account
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if acct, ok := f.accounts[id]; ok {
		return acct, nil
	}
	return nil, account.ErrAccountNotFound
}

type fakeSubscriptionRepo struct {
	subs map[uint]*subscription.Subscription
}

func (f *fakeSubscriptionRepo) GetActiveByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	if sub, ok := f.subs[accountID]; ok {
		return sub, nil
	}
	return nil, subscription.ErrSubscriptionNotFound
}

type fakePlanRepo struct {
	plans map[uint]*subscription.Plan
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if plan, ok := f.plans[id]; ok {
		return plan, nil
	}
	return nil, subscription.ErrPlanNotFound
}

// recordingCache is an in-memory Cache that counts interactions.
type recordingCache struct {
	entries    map[uint]*CachedEntitlement
	sets       int
	absentSets int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[uint]*CachedEntitlement)}
}

func (c *recordingCache) Get(ctx context.Context, accountID uint) (*CachedEntitlement, error) {
	return c.entries[accountID], nil
}

func (c *recordingCache) Set(ctx context.Context, accountID uint, ent *entitlement.Entitlement) error {
	c.entries[accountID] = &CachedEntitlement{Entitlement: ent}
	c.sets++
	return nil
}

func (c *recordingCache) SetAbsent(ctx context.Context, accountID uint) error {
	c.entries[accountID] = &CachedEntitlement{Absent: true}
	c.absentSets++
	return nil
}

func (c *recordingCache) Invalidate(ctx context.Context, accountID uint) error {
	delete(c.entries, accountID)
	return nil
}

type fixture struct {
	accounts *fakeAccountRepo
	subs     *fakeSubscriptionRepo
	plans    *fakePlanRepo
	cache    *recordingCache
	clock    *clock.Mock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return &fixture{
		accounts: &fakeAccountRepo{accounts: make(map[uint]*account.Account)},
		subs:     &fakeSubscriptionRepo{subs: make(map[uint]*subscription.Subscription)},
		plans:    &fakePlanRepo{plans: make(map[uint]*subscription.Plan)},
		cache:    newRecordingCache(),
		clock:    mock,
	}
}

func (f *fixture) resolver() *Resolver {
	return NewResolver(f.accounts, f.subs, f.plans, f.cache, f.clock,
		TrialLimits{MaxDevices: 1, MaxStreams: 1}, newNopLogger())
}

func (f *fixture) addAccount(t *testing.T, id uint, ownerID *uint, membership account.MembershipStatus, trialUntil *time.Time) {
	t.Helper()
	acct, err := account.ReconstructAccount(id, account.StatusActive, true, ownerID, membership, trialUntil, f.clock.Now(), f.clock.Now())
	require.NoError(t, err)
	f.accounts.accounts[id] = acct
}

func (f *fixture) addSubscription(t *testing.T, accountID, planID uint) {
	t.Helper()
	now := f.clock.Now().UTC()
	sub, err := subscription.ReconstructSubscription(
		accountID*10, accountID, planID, vo.StatusActive,
		now.AddDate(0, -1, 0), now.AddDate(0, 1, 0),
		true, nil, nil, 1, now, now,
	)
	require.NoError(t, err)
	f.subs.subs[accountID] = sub
}

func (f *fixture) addPlan(t *testing.T, id uint, slug string, tier vo.PlanTier, maxDevices, maxStreams int) {
	t.Helper()
	plan, err := subscription.ReconstructPlan(
		id, slug, slug, tier, maxDevices, maxStreams, nil,
		subscription.PlanStatusActive, 0, 1, f.clock.Now(), f.clock.Now(),
	)
	require.NoError(t, err)
	f.plans.plans[id] = plan
}

func TestResolver_OwnSubscription(t *testing.T) {
	f := newFixture(t)
	f.addAccount(t, 42, nil, "", nil)
	f.addPlan(t, 3, "standard", vo.TierStandard, 2, 2)
	f.addSubscription(t, 42, 3)

	ent, err := f.resolver().Resolve(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, entitlement.SourceOwnSubscription, ent.Source)
	assert.Equal(t, "standard", ent.PlanSlug)
	assert.Equal(t, 2, ent.MaxDevices)
	assert.False(t, ent.IsFamilyShared)
	assert.Equal(t, uint(42), ent.ScopeID())
	assert.Equal(t, 1, f.cache.sets)
}

func TestResolver_FamilyInheritance(t *testing.T) {
	ownerID := uint(7)

	f := newFixture(t)
	f.addAccount(t, 42, &ownerID, account.MembershipAccepted, nil)
	f.addPlan(t, 5, "family", vo.TierFamily, 4, 4)
	f.addSubscription(t, ownerID, 5)

	ent, err := f.resolver().Resolve(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, entitlement.SourceFamilyShared, ent.Source)
	assert.True(t, ent.IsFamilyShared)
	assert.Equal(t, uint(42), ent.AccountID)
	// limits are counted against the household owner
	assert.Equal(t, ownerID, ent.ScopeID())
}

func TestResolver_PendingMemberDoesNotInherit(t *testing.T) {
	ownerID := uint(7)

	f := newFixture(t)
	f.addAccount(t, 42, &ownerID, account.MembershipPending, nil)
	f.addPlan(t, 5, "family", vo.TierFamily, 4, 4)
	f.addSubscription(t, ownerID, 5)

	_, err := f.resolver().Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, entitlement.ErrNoEntitlement)
}

func TestResolver_NonFamilyOwnerPlanDoesNotShare(t *testing.T) {
	ownerID := uint(7)

	f := newFixture(t)
	f.addAccount(t, 42, &ownerID, account.MembershipAccepted, nil)
	f.addPlan(t, 4, "premium", vo.TierPremium, 4, 4)
	f.addSubscription(t, ownerID, 4)

	_, err := f.resolver().Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, entitlement.ErrNoEntitlement)
}

func TestResolver_OwnSubscriptionOutranksFamily(t *testing.T) {
	ownerID := uint(7)

	f := newFixture(t)
	f.addAccount(t, 42, &ownerID, account.MembershipAccepted, nil)
	f.addPlan(t, 2, "basic", vo.TierBasic, 1, 1)
	f.addPlan(t, 5, "family", vo.TierFamily, 4, 4)
	f.addSubscription(t, 42, 2)
	f.addSubscription(t, ownerID, 5)

	ent, err := f.resolver().Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, entitlement.SourceOwnSubscription, ent.Source)
	assert.Equal(t, "basic", ent.PlanSlug)
}

func TestResolver_LegacyTrial(t *testing.T) {
	f := newFixture(t)
	until := f.clock.Now().UTC().Add(72 * time.Hour)
	f.addAccount(t, 42, nil, "", &until)

	ent, err := f.resolver().Resolve(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, entitlement.SourceLegacyTrial, ent.Source)
	assert.Equal(t, vo.TierTrial, ent.Tier)
	assert.Equal(t, 1, ent.MaxDevices)
	assert.Equal(t, 1, ent.MaxStreams)
	assert.Equal(t, until, ent.ExpiresAt)
}

func TestResolver_ExpiredLegacyTrialIsAbsent(t *testing.T) {
	f := newFixture(t)
	until := f.clock.Now().UTC().Add(-time.Hour)
	f.addAccount(t, 42, nil, "", &until)

	_, err := f.resolver().Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, entitlement.ErrNoEntitlement)
	assert.Equal(t, 1, f.cache.absentSets)
}

func TestResolver_UnknownAccountIsAbsent(t *testing.T) {
	f := newFixture(t)

	_, err := f.resolver().Resolve(context.Background(), 99)
	assert.ErrorIs(t, err, entitlement.ErrNoEntitlement)
}

func TestResolver_CacheHitSkipsStores(t *testing.T) {
	f := newFixture(t)
	cached := &entitlement.Entitlement{AccountID: 42, PlanSlug: "standard", Tier: vo.TierStandard}
	f.cache.entries[42] = &CachedEntitlement{Entitlement: cached}

	ent, err := f.resolver().Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, cached, ent)
	assert.Equal(t, 0, f.cache.sets)
}

func TestResolver_ExpiredCacheEntryIsMiss(t *testing.T) {
	f := newFixture(t)
	// stale cache entry from before the account renewed
	f.cache.entries[42] = &CachedEntitlement{Entitlement: &entitlement.Entitlement{
		AccountID: 42,
		PlanSlug:  "basic",
		Tier:      vo.TierBasic,
		ExpiresAt: f.clock.Now().UTC().Add(-time.Hour),
	}}
	f.addAccount(t, 42, nil, "", nil)
	f.addPlan(t, 3, "standard", vo.TierStandard, 2, 2)
	f.addSubscription(t, 42, 3)

	ent, err := f.resolver().Resolve(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "standard", ent.PlanSlug)
	// the store was consulted and the cache rewritten
	assert.Equal(t, 1, f.cache.sets)
}

func TestResolver_AbsentMarkerShortCircuits(t *testing.T) {
	f := newFixture(t)
	f.cache.entries[42] = &CachedEntitlement{Absent: true}
	// the store would resolve fine, but the marker wins
	f.addAccount(t, 42, nil, "", nil)
	f.addPlan(t, 3, "standard", vo.TierStandard, 2, 2)
	f.addSubscription(t, 42, 3)

	_, err := f.resolver().Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, entitlement.ErrNoEntitlement)
}

func TestResolver_StoreFaultIsNotNoEntitlement(t *testing.T) {
	f := newFixture(t)
	f.addAccount(t, 42, nil, "", nil)
	f.addPlan(t, 3, "standard", vo.TierStandard, 2, 2)
	f.addSubscription(t, 42, 3)
	f.plans.plans = nil // plan lookup now fails

	_, err := f.resolver().Resolve(context.Background(), 42)
	require.Error(t, err)
	assert.False(t, errors.Is(err, entitlement.ErrNoEntitlement))
	assert.Equal(t, 0, f.cache.absentSets)
}
