package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/domain/subscription"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/mappers"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrPlanNotFound
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
