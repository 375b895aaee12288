package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/domain/profile"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/mappers"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

type RestrictionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RestrictionMapper
	logger logger.Interface
}

func NewRestrictionRepository(db *gorm.DB, logger logger.Interface) profile.RestrictionRepository {
	return &RestrictionRepositoryImpl{
		db:     db,
		mapper: mappers.NewRestrictionMapper(),
		logger: logger,
	}
}

func (r *RestrictionRepositoryImpl) GetByProfileID(ctx context.Context, profileID uint) (*profile.Restriction, error) {
	var model models.ProfileRestrictionModel
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrRestrictionNotFound
		}
		r.logger.Errorw("failed to get profile restriction", "error", err, "profile_id", profileID)
		return nil, fmt.Errorf("failed to get profile restriction: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
