package playback

import "time"

// StreamSession is an ephemeral marker of an in-progress playback. It is
// distinct from a device session: it means "currently playing", not
// "currently logged in". It expires by heartbeat age, never by explicit
// close, because players may disappear without signaling.
type StreamSession struct {
	ScopeID         uint      `json:"scope_id"`
	AccountID       uint      `json:"account_id"`
	ContentID       uint      `json:"content_id"`
	LastHeartbeatAt time.Time `json:"last_heartbeat_at"`
}

// IsLiveWithin reports whether the stream still counts against the
// concurrency ceiling.
func (s StreamSession) IsLiveWithin(window time.Duration, now time.Time) bool {
	return s.LastHeartbeatAt.After(now.Add(-window))
}
