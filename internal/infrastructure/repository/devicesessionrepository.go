package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vistream-io/vistream/internal/domain/playback"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/mappers"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// DeviceSessionRepositoryImpl implements the device slot registry on
// MySQL. Claim runs inside one transaction holding row locks on the
// scope's sessions, so two devices racing for the last slot serialize
// on the database instead of double-admitting.
type DeviceSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DeviceSessionMapper
	logger logger.Interface
}

func NewDeviceSessionRepository(db *gorm.DB, logger logger.Interface) playback.DeviceSessionRegistry {
	return &DeviceSessionRepositoryImpl{
		db:     db,
		mapper: mappers.NewDeviceSessionMapper(),
		logger: logger,
	}
}

func (r *DeviceSessionRepositoryImpl) Claim(ctx context.Context, req playback.ClaimRequest) (*playback.ClaimOutcome, error) {
	var outcome *playback.ClaimOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock every open row for the scope. The range lock also blocks a
		// concurrent insert into the same scope until commit.
		var rows []*models.DeviceSessionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("scope_id = ? AND status = ?", req.ScopeID, string(playback.SessionStatusActive)).
			Order("device_id ASC").
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to lock device sessions: %w", err)
		}

		sessions := make([]*playback.DeviceSession, 0, len(rows))
		for _, row := range rows {
			session, err := r.mapper.ToEntity(row)
			if err != nil {
				return err
			}
			sessions = append(sessions, session)
		}

		plan := playback.PlanClaim(sessions, req)
		switch plan.Action {
		case playback.ClaimRefresh:
			plan.Existing.Refresh(req.Now)
			err := tx.Model(&models.DeviceSessionModel{}).
				Where("id = ?", plan.Existing.ID()).
				Update("last_activity_at", req.Now).Error
			if err != nil {
				return fmt.Errorf("failed to refresh device session: %w", err)
			}
			outcome = &playback.ClaimOutcome{
				Admitted:    true,
				Session:     plan.Existing,
				Refreshed:   true,
				ActiveCount: len(sessions),
			}
			return nil

		case playback.ClaimInsert:
			session, err := r.insertSession(tx, req)
			if err != nil {
				return err
			}
			outcome = &playback.ClaimOutcome{
				Admitted:    true,
				Session:     session,
				ActiveCount: len(sessions) + 1,
			}
			return nil

		case playback.ClaimEvict:
			plan.Evictee.Close(req.Now)
			err := tx.Model(&models.DeviceSessionModel{}).
				Where("id = ?", plan.Evictee.ID()).
				Updates(map[string]interface{}{
					"status":    string(playback.SessionStatusClosed),
					"closed_at": req.Now,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to evict device session: %w", err)
			}

			session, err := r.insertSession(tx, req)
			if err != nil {
				return err
			}
			outcome = &playback.ClaimOutcome{
				Admitted:    true,
				Session:     session,
				Evicted:     plan.Evictee,
				ActiveCount: len(sessions),
			}
			return nil

		default:
			outcome = &playback.ClaimOutcome{
				Admitted:    false,
				ActiveCount: len(sessions),
			}
			return nil
		}
	})
	if err != nil {
		r.logger.Errorw("device slot claim failed", "error", err, "scope_id", req.ScopeID, "device_id", req.DeviceID)
		return nil, err
	}

	return outcome, nil
}

// insertSession creates a fresh session row for the claiming device. A
// soft-closed row left behind by the same device is dropped first so the
// (scope, device) unique index stays satisfiable.
func (r *DeviceSessionRepositoryImpl) insertSession(tx *gorm.DB, req playback.ClaimRequest) (*playback.DeviceSession, error) {
	err := tx.Where("scope_id = ? AND device_id = ? AND status = ?",
		req.ScopeID, req.DeviceID, string(playback.SessionStatusClosed)).
		Delete(&models.DeviceSessionModel{}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to clear closed device session: %w", err)
	}

	session, err := playback.NewDeviceSession(req.ScopeID, req.AccountID, req.DeviceID, req.DeviceType, req.Now)
	if err != nil {
		return nil, err
	}

	if err := tx.Create(r.mapper.ToModel(session)).Error; err != nil {
		return nil, fmt.Errorf("failed to create device session: %w", err)
	}
	return session, nil
}
