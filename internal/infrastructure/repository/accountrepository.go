package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/domain/account"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/mappers"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

type AccountRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
	logger logger.Interface
}

func NewAccountRepository(db *gorm.DB, logger logger.Interface) account.Repository {
	return &AccountRepositoryImpl{
		db:     db,
		mapper: mappers.NewAccountMapper(),
		logger: logger,
	}
}

func (r *AccountRepositoryImpl) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		r.logger.Errorw("failed to get account by ID", "error", err, "account_id", id)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
