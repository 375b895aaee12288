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

type OverrideRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OverrideMapper
	logger logger.Interface
}

func NewOverrideRepository(db *gorm.DB, logger logger.Interface) profile.OverrideRepository {
	return &OverrideRepositoryImpl{
		db:     db,
		mapper: mappers.NewOverrideMapper(),
		logger: logger,
	}
}

func (r *OverrideRepositoryImpl) GetByProfileAndContent(ctx context.Context, profileID, contentID uint) (*profile.ParentalOverride, error) {
	var model models.ParentalOverrideModel
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND content_id = ?", profileID, contentID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrOverrideNotFound
		}
		r.logger.Errorw("failed to get parental override", "error", err, "profile_id", profileID, "content_id", contentID)
		return nil, fmt.Errorf("failed to get parental override: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
