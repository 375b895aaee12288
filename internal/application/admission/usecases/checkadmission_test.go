package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistream-io/vistream/internal/application/admission/dto"
	"github.com/vistream-io/vistream/internal/application/admission/guards"
	"github.com/vistream-io/vistream/internal/domain/account"
	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/playback"
	"github.com/vistream-io/vistream/internal/domain/profile"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	apperrors "github.com/vistream-io/vistream/internal/shared/errors"
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

type fakeAccounts struct {
	accounts map[uint]*account.Account
	err      error
}

func (f *fakeAccounts) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	if acct, ok := f.accounts[id]; ok {
		return acct, nil
	}
	return nil, account.ErrAccountNotFound
}

type fakeContents struct {
	records map[uint]*content.Record
}

func (f *fakeContents) GetByID(ctx context.Context, id uint) (*content.Record, error) {
	if rec, ok := f.records[id]; ok {
		return rec, nil
	}
	return nil, content.ErrContentNotFound
}

type fakeRestrictions struct {
	restrictions map[uint]*profile.Restriction
	err          error
}

func (f *fakeRestrictions) GetByProfileID(ctx context.Context, profileID uint) (*profile.Restriction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.restrictions[profileID]; ok {
		return r, nil
	}
	return nil, profile.ErrRestrictionNotFound
}

type fakeResolver struct {
	ent *entitlement.Entitlement
	err error
}

func (f *fakeResolver) Resolve(ctx context.Context, accountID uint) (*entitlement.Entitlement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ent, nil
}

type fakeDeviceRegistry struct {
	outcome *playback.ClaimOutcome
	err     error
	lastReq playback.ClaimRequest
	claims  int
}

func (f *fakeDeviceRegistry) Claim(ctx context.Context, req playback.ClaimRequest) (*playback.ClaimOutcome, error) {
	f.lastReq = req
	f.claims++
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

type fakeStreamRegistry struct {
	outcome    *playback.StreamAdmitOutcome
	err        error
	admits     int
	heartbeats int
	lastScope  uint
}

func (f *fakeStreamRegistry) Admit(ctx context.Context, scopeID, accountID, contentID uint, ceiling int, window time.Duration, now time.Time) (*playback.StreamAdmitOutcome, error) {
	f.admits++
	f.lastScope = scopeID
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

func (f *fakeStreamRegistry) Heartbeat(ctx context.Context, scopeID, accountID, contentID uint, window time.Duration, now time.Time) error {
	f.heartbeats++
	f.lastScope = scopeID
	return f.err
}

func (f *fakeStreamRegistry) CountActive(ctx context.Context, scopeID uint, window time.Duration, now time.Time) (int, error) {
	return 0, nil
}

type fakeOverrides struct{}

func (f *fakeOverrides) GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*profile.ParentalOverride, error) {
	return nil, profile.ErrOverrideNotFound
}

type fakeGeoResolver struct {
	country string
	err     error
}

func (f *fakeGeoResolver) ResolveCountry(ctx context.Context, ipAddress string) (string, error) {
	return f.country, f.err
}

type recordingAuditSink struct {
	events []admission.AuditEvent
}

func (s *recordingAuditSink) Record(ctx context.Context, event admission.AuditEvent) {
	s.events = append(s.events, event)
}

type fixture struct {
	accounts     *fakeAccounts
	contents     *fakeContents
	restrictions *fakeRestrictions
	resolver     *fakeResolver
	devices      *fakeDeviceRegistry
	streams      *fakeStreamRegistry
	geo          *fakeGeoResolver
	audit        *recordingAuditSink
	clock        *clock.Mock
}

// newFixture wires the use case with an active account, a published
// title, a standard entitlement, and open registries.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	now := mock.Now().UTC()

	acct, err := account.ReconstructAccount(42, account.StatusActive, true, nil, "", nil, now, now)
	require.NoError(t, err)

	rec, err := content.ReconstructRecord(
		100, "some title",
		content.StatusPublished, content.VisibilityPublic,
		content.Rating13Plus, nil,
		content.GeoRules{}, content.RightsWindow{}, 0,
		now, now,
	)
	require.NoError(t, err)

	session, err := playback.NewDeviceSession(42, 42, "device-a", vo.DeviceClassMobile, now)
	require.NoError(t, err)

	return &fixture{
		accounts:     &fakeAccounts{accounts: map[uint]*account.Account{42: acct}},
		contents:     &fakeContents{records: map[uint]*content.Record{100: rec}},
		restrictions: &fakeRestrictions{restrictions: make(map[uint]*profile.Restriction)},
		resolver: &fakeResolver{ent: &entitlement.Entitlement{
			AccountID:  42,
			PlanID:     3,
			PlanSlug:   "standard",
			Tier:       vo.TierStandard,
			Source:     entitlement.SourceOwnSubscription,
			MaxDevices: 2,
			MaxStreams: 2,
		}},
		devices: &fakeDeviceRegistry{
			outcome: &playback.ClaimOutcome{Admitted: true, Session: session, ActiveCount: 1},
		},
		streams: &fakeStreamRegistry{
			outcome: &playback.StreamAdmitOutcome{Admitted: true, ActiveCount: 1},
		},
		geo:   &fakeGeoResolver{},
		audit: &recordingAuditSink{},
		clock: mock,
	}
}

func (f *fixture) useCase() *CheckAdmissionUseCase {
	log := newNopLogger()
	return NewCheckAdmissionUseCase(
		f.accounts,
		f.contents,
		f.restrictions,
		f.resolver,
		guards.NewSessionSlotManager(f.devices, 30*time.Minute, f.clock, log),
		guards.NewStreamConcurrencyGuard(f.streams, 5*time.Minute, f.clock, log),
		guards.NewMinorContentGate(&fakeOverrides{}, f.clock, log),
		guards.NewTemporalAccessGuard(time.UTC, f.clock, log),
		guards.NewGeographicRightsGuard(f.geo, log),
		guards.NewContentRightsGuard(f.clock),
		f.audit,
		f.clock,
		log,
	)
}

func checkRequest() dto.CheckAdmissionRequest {
	return dto.CheckAdmissionRequest{
		AccountID:  42,
		ContentID:  100,
		DeviceID:   "device-a",
		DeviceType: "mobile",
		RequestIP:  "203.0.113.10",
	}
}

func TestCheckAdmission_Grants(t *testing.T) {
	f := newFixture(t)

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)

	assert.True(t, resp.Granted)
	assert.NotEmpty(t, resp.SessionID)
	require.NotNil(t, resp.Entitlement)
	assert.Equal(t, "standard", resp.Entitlement.PlanSlug)
	assert.Equal(t, f.clock.Now().UTC(), resp.DecidedAt)

	require.Len(t, f.audit.events, 1)
	assert.True(t, f.audit.events[0].Granted)
	assert.Equal(t, resp.SessionID, f.audit.events[0].SessionID)
}

func TestCheckAdmission_InvalidDeviceTypeIsAnError(t *testing.T) {
	f := newFixture(t)
	req := checkRequest()
	req.DeviceType = "toaster"

	_, err := f.useCase().Execute(context.Background(), req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Empty(t, f.audit.events)
}

func TestCheckAdmission_UnknownAccountDeniesUserInactive(t *testing.T) {
	f := newFixture(t)
	req := checkRequest()
	req.AccountID = 99

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Equal(t, admission.CodeUserInactive.String(), resp.Code)
}

func TestCheckAdmission_SuspendedAccountDeniesUserInactive(t *testing.T) {
	f := newFixture(t)
	now := f.clock.Now()
	acct, err := account.ReconstructAccount(42, account.StatusSuspended, true, nil, "", nil, now, now)
	require.NoError(t, err)
	f.accounts.accounts[42] = acct

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Equal(t, admission.CodeUserInactive.String(), resp.Code)
}

func TestCheckAdmission_DraftContentBehavesAsMissing(t *testing.T) {
	f := newFixture(t)
	now := f.clock.Now()
	draft, err := content.ReconstructRecord(
		100, "unreleased",
		content.StatusDraft, content.VisibilityPublic,
		content.RatingAll, nil,
		content.GeoRules{}, content.RightsWindow{}, 0,
		now, now,
	)
	require.NoError(t, err)
	f.contents.records[100] = draft

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.Equal(t, admission.CodeContentNotFound.String(), resp.Code)
}

func TestCheckAdmission_NoEntitlementDenies(t *testing.T) {
	f := newFixture(t)
	f.resolver.ent = nil
	f.resolver.err = entitlement.ErrNoEntitlement

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.Equal(t, admission.CodeSubscriptionRequired.String(), resp.Code)
	// denial must short-circuit before the registries
	assert.Equal(t, 0, f.devices.claims)
	assert.Equal(t, 0, f.streams.admits)
}

func TestCheckAdmission_DeviceLimitShortCircuitsStreams(t *testing.T) {
	f := newFixture(t)
	f.devices.outcome = &playback.ClaimOutcome{Admitted: false, ActiveCount: 2}

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.Equal(t, admission.CodeDeviceLimitReached.String(), resp.Code)
	assert.Equal(t, 0, f.streams.admits)

	require.Len(t, f.audit.events, 1)
	assert.False(t, f.audit.events[0].Granted)
	assert.Equal(t, admission.CodeDeviceLimitReached, f.audit.events[0].Code)
}

func TestCheckAdmission_StreamCeilingDenies(t *testing.T) {
	f := newFixture(t)
	f.streams.outcome = &playback.StreamAdmitOutcome{Admitted: false, ActiveCount: 2}

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.Equal(t, admission.CodeStreamLimitReached.String(), resp.Code)
}

func TestCheckAdmission_FamilySharedCountsAgainstOwner(t *testing.T) {
	ownerID := uint(7)

	f := newFixture(t)
	f.resolver.ent = &entitlement.Entitlement{
		AccountID:      42,
		PlanID:         5,
		PlanSlug:       "family",
		Tier:           vo.TierFamily,
		Source:         entitlement.SourceFamilyShared,
		MaxDevices:     4,
		MaxStreams:     4,
		IsFamilyShared: true,
		FamilyOwnerID:  &ownerID,
	}

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, resp.Granted)
	assert.Equal(t, ownerID, f.devices.lastReq.ScopeID)
	assert.Equal(t, ownerID, f.streams.lastScope)
}

func TestCheckAdmission_KidProfileBlocksMatureContent(t *testing.T) {
	f := newFixture(t)
	f.restrictions.restrictions[5] = &profile.Restriction{MaxAgeRating: content.Rating10Plus}

	req := checkRequest()
	req.ProfileKind = string(profile.ContextKidProfile)
	req.ProfileID = 5

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Equal(t, admission.CodeKidContentRestricted.String(), resp.Code)
}

func TestCheckAdmission_UnrestrictedProfileSkipsMinorGate(t *testing.T) {
	f := newFixture(t)

	req := checkRequest()
	req.ProfileKind = string(profile.ContextKidProfile)
	req.ProfileID = 5 // no restriction row exists for this profile

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Granted)
}

func TestCheckAdmission_RestrictionLookupFaultFailsClosed(t *testing.T) {
	f := newFixture(t)
	f.restrictions.err = errors.New("db gone")

	req := checkRequest()
	req.ProfileKind = string(profile.ContextKidProfile)
	req.ProfileID = 5

	resp, err := f.useCase().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Equal(t, admission.CodeSystemError.String(), resp.Code)
}

func TestCheckAdmission_GeoLookupFaultFailsOpen(t *testing.T) {
	f := newFixture(t)
	f.geo.err = errors.New("geoip database corrupt")

	now := f.clock.Now()
	restricted, err := content.ReconstructRecord(
		100, "some title",
		content.StatusPublished, content.VisibilityPublic,
		content.Rating13Plus, nil,
		content.GeoRules{IsGeorestricted: true, AllowedRegions: []string{"US"}},
		content.RightsWindow{}, 0,
		now, now,
	)
	require.NoError(t, err)
	f.contents.records[100] = restricted

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.True(t, resp.Granted)
}

func TestCheckAdmission_BlockedCountryDenies(t *testing.T) {
	f := newFixture(t)
	f.geo.country = "KP"

	now := f.clock.Now()
	restricted, err := content.ReconstructRecord(
		100, "some title",
		content.StatusPublished, content.VisibilityPublic,
		content.Rating13Plus, nil,
		content.GeoRules{IsGeorestricted: true, BlockedCountries: []string{"KP"}},
		content.RightsWindow{}, 0,
		now, now,
	)
	require.NoError(t, err)
	f.contents.records[100] = restricted

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.Equal(t, admission.CodeGeoRestricted.String(), resp.Code)
}

func TestCheckAdmission_StreamRegistryFaultFailsClosed(t *testing.T) {
	f := newFixture(t)
	f.streams.err = errors.New("redis down")

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.False(t, resp.Granted)
	assert.Equal(t, admission.CodeSystemError.String(), resp.Code)
}

func TestCheckAdmission_LapsedRightsDeny(t *testing.T) {
	f := newFixture(t)

	now := f.clock.Now()
	lapsed, err := content.ReconstructRecord(
		100, "some title",
		content.StatusPublished, content.VisibilityPublic,
		content.Rating13Plus, nil,
		content.GeoRules{},
		content.RightsWindow{End: now.Add(-24 * time.Hour)}, 0,
		now, now,
	)
	require.NoError(t, err)
	f.contents.records[100] = lapsed

	resp, err := f.useCase().Execute(context.Background(), checkRequest())
	require.NoError(t, err)
	assert.Equal(t, admission.CodeContentRightsRestricted.String(), resp.Code)
	// the slot claim already committed before the rights denial
	assert.Equal(t, 1, f.devices.claims)
}
