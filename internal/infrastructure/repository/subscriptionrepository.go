package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/domain/subscription"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/mappers"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) GetActiveByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND status = ?", accountID, vo.StatusActive.String()).
		Order("end_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrSubscriptionNotFound
		}
		r.logger.Errorw("failed to get active subscription", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
