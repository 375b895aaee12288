package playback

import (
	"context"
	"time"

	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
)

// ClaimRequest asks the device session registry to admit a device under a
// plan's device limit.
type ClaimRequest struct {
	ScopeID          uint
	AccountID        uint
	DeviceID         string
	DeviceType       vo.DeviceClass
	Limit            int
	InactivityWindow time.Duration
	Now              time.Time
}

// ClaimOutcome reports what the registry did for a claim.
type ClaimOutcome struct {
	// Admitted is true when the device holds a slot after the call.
	Admitted bool
	// Session is the admitted session (refreshed, new, or replacing an
	// evicted one). Nil when the claim was denied.
	Session *DeviceSession
	// Refreshed is true when the device already held a slot and only its
	// activity timestamp moved.
	Refreshed bool
	// Evicted is the stale session soft-closed to make room, nil when no
	// eviction happened.
	Evicted *DeviceSession
	// ActiveCount is the number of sessions counting against the limit
	// at decision time (after any eviction).
	ActiveCount int
}

// DeviceSessionRegistry owns the device slot rows. A session counts
// against the device limit while it is open; the inactivity window only
// decides whether it may be evicted. Claim must execute as a single
// atomic unit against the backing store: two devices racing for the last
// slot must never both be admitted. A naive read-count-then-insert
// implementation is not an acceptable strategy.
//
// Claim semantics, in order:
//  1. an existing open (scope, device) session is refreshed and
//     admitted, so repeated requests from one device are idempotent
//  2. a free slot (open session count below limit) admits a new session
//  3. otherwise the single oldest stale session (no activity inside the
//     inactivity window; ties broken by device ID ascending) is
//     soft-closed and the new session takes its place
//  4. otherwise the claim is denied with the current open session count
type DeviceSessionRegistry interface {
	Claim(ctx context.Context, req ClaimRequest) (*ClaimOutcome, error)
}

// StreamAdmitOutcome reports what the stream registry did for an
// admission attempt.
type StreamAdmitOutcome struct {
	// Admitted is true when the playback heartbeat was recorded or
	// refreshed.
	Admitted bool
	// ActiveCount is the number of live streams counted for the scope at
	// decision time.
	ActiveCount int
}

// StreamRegistry owns the live playback heartbeats. Admit has the same
// atomicity requirement as DeviceSessionRegistry.Claim: trimming expired
// heartbeats, counting, and claiming must be one unit.
type StreamRegistry interface {
	// Admit refreshes the (account, content) heartbeat if it is already
	// live, else claims a new one when the count is under the ceiling.
	Admit(ctx context.Context, scopeID, accountID, contentID uint, ceiling int, window time.Duration, now time.Time) (*StreamAdmitOutcome, error)

	// Heartbeat refreshes a live stream mid-playback without an
	// admission check.
	Heartbeat(ctx context.Context, scopeID, accountID, contentID uint, window time.Duration, now time.Time) error

	// CountActive returns the number of live streams for a scope.
	CountActive(ctx context.Context, scopeID uint, window time.Duration, now time.Time) (int, error)
}
