package guards

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/playback"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// SessionSlotManager admits devices against the plan's device limit. It
// rejects unsupported device classes, keeps re-admission idempotent for a
// device that already holds a slot, and evicts the oldest stale session
// when the registry is full. The count-or-evict-then-create step is
// delegated to the registry's atomic Claim primitive.
type SessionSlotManager struct {
	registry         playback.DeviceSessionRegistry
	inactivityWindow time.Duration
	clock            clock.Clock
	logger           logger.Interface
}

// NewSessionSlotManager creates a new session slot manager
func NewSessionSlotManager(
	registry playback.DeviceSessionRegistry,
	inactivityWindow time.Duration,
	clk clock.Clock,
	log logger.Interface,
) *SessionSlotManager {
	return &SessionSlotManager{
		registry:         registry,
		inactivityWindow: inactivityWindow,
		clock:            clk,
		logger:           log,
	}
}

// Policy returns the guard's failure policy. Device slots gate billing
// integrity, so registry faults deny.
func (g *SessionSlotManager) Policy() admission.FailurePolicy {
	return admission.FailClosed
}

// Check admits or denies a device for the entitlement's scope. The
// returned outcome carries the admitted session and any eviction already
// committed; evictions are not rolled back if a later guard denies.
func (g *SessionSlotManager) Check(
	ctx context.Context,
	ent *entitlement.Entitlement,
	accountID uint,
	deviceID string,
	deviceType vo.DeviceClass,
) (admission.Result, *playback.ClaimOutcome, error) {
	if !ent.SupportsDeviceClass(deviceType) {
		return admission.Denied(
			admission.CodePlanRestriction,
			fmt.Sprintf("your plan does not support %s devices", deviceType),
			map[string]any{
				"device_type":     deviceType.String(),
				"allowed_classes": ent.DeviceClasses,
			},
		), nil, nil
	}

	outcome, err := g.registry.Claim(ctx, playback.ClaimRequest{
		ScopeID:          ent.ScopeID(),
		AccountID:        accountID,
		DeviceID:         deviceID,
		DeviceType:       deviceType,
		Limit:            ent.MaxDevices,
		InactivityWindow: g.inactivityWindow,
		Now:              g.clock.Now().UTC(),
	})
	if err != nil {
		return admission.Result{}, nil, fmt.Errorf("device slot claim failed: %w", err)
	}

	if !outcome.Admitted {
		return admission.Denied(
			admission.CodeDeviceLimitReached,
			"all device slots for your plan are in use",
			map[string]any{
				"active":           outcome.ActiveCount,
				"max":              ent.MaxDevices,
				"is_family_shared": ent.IsFamilyShared,
			},
		), outcome, nil
	}

	if outcome.Evicted != nil {
		g.logger.Infow("stale device session evicted",
			"scope_id", ent.ScopeID(),
			"evicted_device_id", outcome.Evicted.DeviceID(),
			"new_device_id", deviceID,
		)
	}

	return admission.Allow(), outcome, nil
}
