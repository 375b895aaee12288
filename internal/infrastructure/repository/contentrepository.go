package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/mappers"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ContentMapper
	logger logger.Interface
}

func NewContentRepository(db *gorm.DB, logger logger.Interface) content.Repository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mappers.NewContentMapper(),
		logger: logger,
	}
}

func (r *ContentRepositoryImpl) GetByID(ctx context.Context, id uint) (*content.Record, error) {
	var model models.ContentModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, content.ErrContentNotFound
		}
		r.logger.Errorw("failed to get content by ID", "error", err, "content_id", id)
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
