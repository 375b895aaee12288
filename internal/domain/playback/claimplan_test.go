package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
)

func openSession(t *testing.T, deviceID string, lastActivity time.Time) *DeviceSession {
	t.Helper()
	s, err := NewDeviceSession(7, 42, deviceID, vo.DeviceClassTV, lastActivity)
	require.NoError(t, err)
	return s
}

func claimReq(deviceID string, limit int, now time.Time) ClaimRequest {
	return ClaimRequest{
		ScopeID:          7,
		AccountID:        42,
		DeviceID:         deviceID,
		DeviceType:       vo.DeviceClassMobile,
		Limit:            limit,
		InactivityWindow: 30 * time.Minute,
		Now:              now,
	}
}

func TestPlanClaim_RefreshesExistingDevice(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// the device's own session is long stale and the scope is full, but
	// a repeated claim still refreshes instead of evicting or denying
	existing := openSession(t, "dev-b", now.Add(-2*time.Hour))
	sessions := []*DeviceSession{existing}

	plan := PlanClaim(sessions, claimReq("dev-b", 1, now))
	assert.Equal(t, ClaimRefresh, plan.Action)
	assert.Same(t, existing, plan.Existing)
}

func TestPlanClaim_InsertsIntoFreeSlot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []*DeviceSession{openSession(t, "dev-a", now.Add(-5*time.Minute))}

	plan := PlanClaim(sessions, claimReq("dev-b", 2, now))
	assert.Equal(t, ClaimInsert, plan.Action)
}

func TestPlanClaim_DeniesWhenFullOfFreshSessions(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []*DeviceSession{
		openSession(t, "dev-a", now.Add(-5*time.Minute)),
		openSession(t, "dev-b", now.Add(-10*time.Minute)),
	}

	plan := PlanClaim(sessions, claimReq("dev-c", 2, now))
	assert.Equal(t, ClaimDeny, plan.Action)
	assert.Nil(t, plan.Evictee)
}

func TestPlanClaim_EvictsOldestStaleSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := openSession(t, "dev-old", now.Add(-2*time.Hour))
	sessions := []*DeviceSession{
		openSession(t, "dev-fresh", now.Add(-5*time.Minute)),
		openSession(t, "dev-mid", now.Add(-time.Hour)),
		oldest,
	}

	plan := PlanClaim(sessions, claimReq("dev-new", 3, now))
	assert.Equal(t, ClaimEvict, plan.Action)
	assert.Same(t, oldest, plan.Evictee)
}

func TestPlanClaim_EvictionTieBreaksByDeviceID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	staleAt := now.Add(-time.Hour)

	// listed out of device ID order on purpose
	second := openSession(t, "dev-b", staleAt)
	first := openSession(t, "dev-a", staleAt)
	sessions := []*DeviceSession{second, first}

	plan := PlanClaim(sessions, claimReq("dev-new", 2, now))
	assert.Equal(t, ClaimEvict, plan.Action)
	assert.Same(t, first, plan.Evictee)
}

func TestPlanClaim_HouseholdFillsToLimitThenDenies(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// a family household with five registered devices, two of them idle
	// but still open; open sessions count against the limit either way
	sessions := make([]*DeviceSession, 0, 6)
	for i, activity := range []time.Duration{
		-time.Minute, -2 * time.Minute, -3 * time.Minute, -2 * time.Hour, -3 * time.Hour,
	} {
		id := string(rune('a' + i))
		sessions = append(sessions, openSession(t, "dev-"+id, now.Add(activity)))
	}

	plan := PlanClaim(sessions, claimReq("dev-f", 6, now))
	assert.Equal(t, ClaimInsert, plan.Action)

	// with all six slots held by fresh sessions a seventh device is out
	sessions = append(sessions, openSession(t, "dev-f", now))
	for _, s := range sessions {
		s.Refresh(now)
	}
	plan = PlanClaim(sessions, claimReq("dev-g", 6, now))
	assert.Equal(t, ClaimDeny, plan.Action)
}
