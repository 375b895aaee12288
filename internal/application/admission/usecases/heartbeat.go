package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/application/admission/dto"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/playback"
	apperrors "github.com/vistream-io/vistream/internal/shared/errors"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// HeartbeatUseCase refreshes a live playback marker mid-stream so the
// stream keeps counting against the plan's concurrency ceiling. Players
// are expected to call it well inside the heartbeat window; a stream
// whose marker lapses simply stops counting.
type HeartbeatUseCase struct {
	resolver        entitlement.Resolver
	streams         playback.StreamRegistry
	heartbeatWindow time.Duration
	clock           clock.Clock
	logger          logger.Interface
}

// NewHeartbeatUseCase creates a new heartbeat use case
func NewHeartbeatUseCase(
	resolver entitlement.Resolver,
	streams playback.StreamRegistry,
	heartbeatWindow time.Duration,
	clk clock.Clock,
	log logger.Interface,
) *HeartbeatUseCase {
	return &HeartbeatUseCase{
		resolver:        resolver,
		streams:         streams,
		heartbeatWindow: heartbeatWindow,
		clock:           clk,
		logger:          log,
	}
}

// Execute refreshes the (account, content) heartbeat under the account's
// current entitlement scope.
func (uc *HeartbeatUseCase) Execute(ctx context.Context, req dto.HeartbeatRequest) error {
	ent, err := uc.resolver.Resolve(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, entitlement.ErrNoEntitlement) {
			return apperrors.NewForbiddenError("an active subscription is required")
		}
		uc.logger.Errorw("entitlement resolution failed during heartbeat", "error", err, "account_id", req.AccountID)
		return apperrors.NewInternalError("heartbeat failed")
	}

	now := uc.clock.Now().UTC()
	if err := uc.streams.Heartbeat(ctx, ent.ScopeID(), req.AccountID, req.ContentID, uc.heartbeatWindow, now); err != nil {
		uc.logger.Errorw("stream heartbeat failed", "error", err, "account_id", req.AccountID, "content_id", req.ContentID)
		return apperrors.NewInternalError("heartbeat failed")
	}

	return nil
}
