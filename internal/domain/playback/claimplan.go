package playback

// ClaimAction is the resolution PlanClaim picked for a device claim.
type ClaimAction int

const (
	// ClaimRefresh admits a device that already holds an open slot.
	ClaimRefresh ClaimAction = iota
	// ClaimInsert admits a new device into a free slot.
	ClaimInsert
	// ClaimEvict displaces one stale session to admit the new device.
	ClaimEvict
	// ClaimDeny rejects the claim; the scope is full of fresh sessions.
	ClaimDeny
)

// ClaimPlan is the decision over a scope's open sessions. The registry
// executes it inside its transaction; the decision itself has no I/O.
type ClaimPlan struct {
	Action ClaimAction
	// Existing is the session to refresh for ClaimRefresh, nil otherwise.
	Existing *DeviceSession
	// Evictee is the session to soft-close for ClaimEvict, nil otherwise.
	Evictee *DeviceSession
}

// PlanClaim resolves a claim against the open sessions of req.ScopeID,
// applying the registry rules in order: an existing (scope, device)
// session is refreshed, a free slot admits a new session, a full scope
// evicts the single oldest stale session, else the claim is denied.
// The result does not depend on the order of sessions.
func PlanClaim(sessions []*DeviceSession, req ClaimRequest) ClaimPlan {
	for _, session := range sessions {
		if session.DeviceID() == req.DeviceID {
			return ClaimPlan{Action: ClaimRefresh, Existing: session}
		}
	}

	if len(sessions) < req.Limit {
		return ClaimPlan{Action: ClaimInsert}
	}

	var evictee *DeviceSession
	for _, session := range sessions {
		if session.IsActiveWithin(req.InactivityWindow, req.Now) {
			continue
		}
		if evictee == nil || evictsBefore(session, evictee) {
			evictee = session
		}
	}
	if evictee == nil {
		return ClaimPlan{Action: ClaimDeny}
	}
	return ClaimPlan{Action: ClaimEvict, Evictee: evictee}
}

// evictsBefore orders stale sessions for displacement: oldest activity
// first, timestamp ties broken by device ID ascending.
func evictsBefore(a, b *DeviceSession) bool {
	if a.LastActivityAt().Equal(b.LastActivityAt()) {
		return a.DeviceID() < b.DeviceID()
	}
	return a.LastActivityAt().Before(b.LastActivityAt())
}
