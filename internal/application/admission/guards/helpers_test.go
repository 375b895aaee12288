package guards

import (
	"context"
	"time"

	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/playback"
	"github.com/vistream-io/vistream/internal/domain/profile"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
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

// fakeDeviceRegistry returns a canned claim outcome and records the
// request it saw.
type fakeDeviceRegistry struct {
	outcome *playback.ClaimOutcome
	err     error
	lastReq playback.ClaimRequest
}

func (f *fakeDeviceRegistry) Claim(ctx context.Context, req playback.ClaimRequest) (*playback.ClaimOutcome, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

// fakeStreamRegistry returns a canned admit outcome.
type fakeStreamRegistry struct {
	outcome   *playback.StreamAdmitOutcome
	err       error
	lastScope uint
}

func (f *fakeStreamRegistry) Admit(ctx context.Context, scopeID, accountID, contentID uint, ceiling int, window time.Duration, now time.Time) (*playback.StreamAdmitOutcome, error) {
	f.lastScope = scopeID
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

func (f *fakeStreamRegistry) Heartbeat(ctx context.Context, scopeID, accountID, contentID uint, window time.Duration, now time.Time) error {
	return nil
}

func (f *fakeStreamRegistry) CountActive(ctx context.Context, scopeID uint, window time.Duration, now time.Time) (int, error) {
	return 0, nil
}

// fakeOverrideRepo serves one override or an error.
type fakeOverrideRepo struct {
	override *profile.ParentalOverride
	err      error
}

func (f *fakeOverrideRepo) GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*profile.ParentalOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.override, nil
}

// fakeGeoResolver resolves every address to a fixed country.
type fakeGeoResolver struct {
	country string
	err     error
}

func (f *fakeGeoResolver) ResolveCountry(ctx context.Context, ipAddress string) (string, error) {
	return f.country, f.err
}

func standardEntitlement() *entitlement.Entitlement {
	return &entitlement.Entitlement{
		AccountID:  42,
		PlanID:     3,
		PlanSlug:   "standard",
		Tier:       vo.TierStandard,
		Source:     entitlement.SourceOwnSubscription,
		MaxDevices: 2,
		MaxStreams: 2,
	}
}

func familyEntitlement(ownerID uint) *entitlement.Entitlement {
	return &entitlement.Entitlement{
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
}

func publishedTitle(id uint, rating content.AgeRating, categories ...content.Category) *content.Record {
	rec, err := content.ReconstructRecord(
		id, "some title",
		content.StatusPublished, content.VisibilityPublic,
		rating, categories,
		content.GeoRules{}, content.RightsWindow{}, 0,
		time.Now(), time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return rec
}

func kidContext(profileID uint, r *profile.Restriction) profile.Context {
	return profile.KidProfileContext(profileID, r)
}
