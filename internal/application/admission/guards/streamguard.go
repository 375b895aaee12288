package guards

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/playback"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// StreamConcurrencyGuard enforces the plan's simultaneous-playback
// ceiling. Live streams are heartbeats inside a short rolling window; for
// family-shared plans the count covers the whole household because every
// member streams under the owner's scope.
type StreamConcurrencyGuard struct {
	registry        playback.StreamRegistry
	heartbeatWindow time.Duration
	clock           clock.Clock
	logger          logger.Interface
}

// NewStreamConcurrencyGuard creates a new stream concurrency guard
func NewStreamConcurrencyGuard(
	registry playback.StreamRegistry,
	heartbeatWindow time.Duration,
	clk clock.Clock,
	log logger.Interface,
) *StreamConcurrencyGuard {
	return &StreamConcurrencyGuard{
		registry:        registry,
		heartbeatWindow: heartbeatWindow,
		clock:           clk,
		logger:          log,
	}
}

// Policy returns the guard's failure policy. The stream ceiling gates
// billing integrity, so registry faults deny.
func (g *StreamConcurrencyGuard) Policy() admission.FailurePolicy {
	return admission.FailClosed
}

// Check admits the playback attempt when the scope is under its ceiling
// and records the (account, content) heartbeat.
func (g *StreamConcurrencyGuard) Check(
	ctx context.Context,
	ent *entitlement.Entitlement,
	accountID, contentID uint,
) (admission.Result, error) {
	outcome, err := g.registry.Admit(
		ctx,
		ent.ScopeID(),
		accountID,
		contentID,
		ent.MaxStreams,
		g.heartbeatWindow,
		g.clock.Now().UTC(),
	)
	if err != nil {
		return admission.Result{}, fmt.Errorf("stream admission failed: %w", err)
	}

	if !outcome.Admitted {
		return admission.Denied(
			admission.CodeStreamLimitReached,
			"too many simultaneous streams for your plan",
			map[string]any{
				"active":           outcome.ActiveCount,
				"max":              ent.MaxStreams,
				"is_family_shared": ent.IsFamilyShared,
			},
		), nil
	}

	return admission.Allow(), nil
}
