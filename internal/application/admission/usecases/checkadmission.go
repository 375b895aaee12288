package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vistream-io/vistream/internal/application/admission/dto"
	"github.com/vistream-io/vistream/internal/application/admission/guards"
	"github.com/vistream-io/vistream/internal/domain/account"
	"github.com/vistream-io/vistream/internal/domain/admission"
	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/domain/entitlement"
	"github.com/vistream-io/vistream/internal/domain/profile"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	apperrors "github.com/vistream-io/vistream/internal/shared/errors"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// CheckAdmissionUseCase runs the admission guards in fixed precedence and
// short-circuits on the first denial:
//
//	account active → content published → entitlement → device slots →
//	stream ceiling → (restricted profile) minor gate → temporal → geo →
//	content rights
//
// Guard registry faults are mapped through each guard's FailurePolicy:
// fail-open guards log and pass, fail-closed guards deny SYSTEM_ERROR.
// Side effects already committed by the slot manager (an eviction) are
// not rolled back when a later guard denies.
type CheckAdmissionUseCase struct {
	accounts     account.Repository
	contents     content.Repository
	restrictions profile.RestrictionRepository
	resolver     entitlement.Resolver
	slots        *guards.SessionSlotManager
	streams      *guards.StreamConcurrencyGuard
	minor        *guards.MinorContentGate
	temporal     *guards.TemporalAccessGuard
	geo          *guards.GeographicRightsGuard
	rights       *guards.ContentRightsGuard
	audit        admission.AuditSink
	clock        clock.Clock
	logger       logger.Interface
}

// NewCheckAdmissionUseCase creates a new check admission use case
func NewCheckAdmissionUseCase(
	accounts account.Repository,
	contents content.Repository,
	restrictions profile.RestrictionRepository,
	resolver entitlement.Resolver,
	slots *guards.SessionSlotManager,
	streams *guards.StreamConcurrencyGuard,
	minor *guards.MinorContentGate,
	temporal *guards.TemporalAccessGuard,
	geo *guards.GeographicRightsGuard,
	rights *guards.ContentRightsGuard,
	audit admission.AuditSink,
	clk clock.Clock,
	log logger.Interface,
) *CheckAdmissionUseCase {
	return &CheckAdmissionUseCase{
		accounts:     accounts,
		contents:     contents,
		restrictions: restrictions,
		resolver:     resolver,
		slots:        slots,
		streams:      streams,
		minor:        minor,
		temporal:     temporal,
		geo:          geo,
		rights:       rights,
		audit:        audit,
		clock:        clk,
		logger:       log,
	}
}

// Execute evaluates one admission check and returns the decision. Errors
// are returned only for invalid requests; infrastructure faults surface
// as SYSTEM_ERROR denials per the failure policies.
func (uc *CheckAdmissionUseCase) Execute(ctx context.Context, req dto.CheckAdmissionRequest) (*dto.AdmissionResponse, error) {
	deviceType := vo.DeviceClass(req.DeviceType)
	if !deviceType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid device type: %s", req.DeviceType))
	}

	decision := uc.decide(ctx, req, deviceType)
	uc.record(ctx, req, decision)
	return dto.FromDecision(decision), nil
}

func (uc *CheckAdmissionUseCase) decide(ctx context.Context, req dto.CheckAdmissionRequest, deviceType vo.DeviceClass) admission.Decision {
	now := uc.clock.Now().UTC()

	// Account-active check. A missing account behaves as inactive rather
	// than leaking identity-store detail.
	acct, err := uc.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return admission.Deny(admission.CodeUserInactive, "your account is not active", nil, now)
		}
		return uc.systemError("account lookup failed", err, now)
	}
	if !acct.IsActive() {
		return admission.Deny(admission.CodeUserInactive, "your account is not active", nil, now)
	}

	// Content-exists/published check. Unpublished or private titles are
	// indistinguishable from missing ones.
	rec, err := uc.contents.GetByID(ctx, req.ContentID)
	if err != nil {
		if errors.Is(err, content.ErrContentNotFound) {
			return admission.Deny(admission.CodeContentNotFound, "this title is not available", nil, now)
		}
		return uc.systemError("content lookup failed", err, now)
	}
	if !rec.IsWatchable() {
		return admission.Deny(admission.CodeContentNotFound, "this title is not available", nil, now)
	}

	// Entitlement resolution, fail closed.
	ent, err := uc.resolver.Resolve(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, entitlement.ErrNoEntitlement) {
			return admission.Deny(admission.CodeSubscriptionRequired, "an active subscription is required", nil, now)
		}
		return uc.systemError("entitlement resolution failed", err, now)
	}

	// Device slot claim. An eviction committed here stays committed even
	// if a later guard denies.
	slotResult, claim, err := uc.slots.Check(ctx, ent, req.AccountID, req.DeviceID, deviceType)
	if err != nil {
		return uc.systemError("device slot check failed", err, now)
	}
	if !slotResult.Allowed {
		return uc.denyFrom(slotResult, now)
	}

	// Stream ceiling.
	streamResult, err := uc.streams.Check(ctx, ent, req.AccountID, req.ContentID)
	if err != nil {
		return uc.systemError("stream concurrency check failed", err, now)
	}
	if !streamResult.Allowed {
		return uc.denyFrom(streamResult, now)
	}

	// Profile restrictions. Loading the restriction is part of the
	// minor-safety path, so it fails closed.
	pc, err := uc.profileContext(ctx, req)
	if err != nil {
		return uc.systemError("profile restriction lookup failed", err, now)
	}

	if pc.IsRestricted() {
		minorResult, err := uc.minor.Check(ctx, pc, rec)
		if err != nil {
			// FailClosed: safety guard faults deny.
			return uc.systemError("minor content gate failed", err, now)
		}
		if !minorResult.Allowed {
			return uc.denyFrom(minorResult, now)
		}
	}

	if temporalResult := uc.temporal.Check(pc); !temporalResult.Allowed {
		return uc.denyFrom(temporalResult, now)
	}

	geoResult, err := uc.geo.Check(ctx, rec.GeoRules(), req.RequestIP)
	if err != nil {
		// FailOpen: regional licensing never blocks playback on faults.
		uc.logger.Warnw("geo guard failed open", "error", err, "request_ip", req.RequestIP)
	} else if !geoResult.Allowed {
		return uc.denyFrom(geoResult, now)
	}

	if rightsResult := uc.rights.Check(rec, ent); !rightsResult.Allowed {
		return uc.denyFrom(rightsResult, now)
	}

	return admission.Grant(ent, claim.Session.ID(), now)
}

func (uc *CheckAdmissionUseCase) profileContext(ctx context.Context, req dto.CheckAdmissionRequest) (profile.Context, error) {
	if req.ProfileKind == "" || req.ProfileKind == string(profile.ContextNone) || req.ProfileID == 0 {
		return profile.NoContext(), nil
	}

	restriction, err := uc.restrictions.GetByProfileID(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrRestrictionNotFound) {
			return profile.NoContext(), nil
		}
		return profile.Context{}, err
	}

	if req.ProfileKind == string(profile.ContextFamilyMemberKid) {
		return profile.FamilyMemberKidContext(req.ProfileID, restriction), nil
	}
	return profile.KidProfileContext(req.ProfileID, restriction), nil
}

func (uc *CheckAdmissionUseCase) denyFrom(r admission.Result, now time.Time) admission.Decision {
	return admission.Deny(r.Code, r.Message, r.Details, now)
}

func (uc *CheckAdmissionUseCase) systemError(msg string, err error, now time.Time) admission.Decision {
	uc.logger.Errorw(msg, "error", err)
	return admission.Deny(admission.CodeSystemError, "the service is temporarily unavailable", nil, now)
}

func (uc *CheckAdmissionUseCase) record(ctx context.Context, req dto.CheckAdmissionRequest, d admission.Decision) {
	uc.audit.Record(ctx, admission.AuditEvent{
		AccountID: req.AccountID,
		ContentID: req.ContentID,
		DeviceID:  req.DeviceID,
		Granted:   d.Granted,
		Code:      d.Code,
		Message:   d.Message,
		SessionID: d.SessionID,
		DecidedAt: d.DecidedAt,
	})
}
