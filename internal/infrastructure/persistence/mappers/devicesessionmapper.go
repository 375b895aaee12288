package mappers

import (
	"fmt"

	"github.com/vistream-io/vistream/internal/domain/playback"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
)

type DeviceSessionMapper interface {
	ToEntity(model *models.DeviceSessionModel) (*playback.DeviceSession, error)
	ToModel(entity *playback.DeviceSession) *models.DeviceSessionModel
}

type DeviceSessionMapperImpl struct{}

func NewDeviceSessionMapper() DeviceSessionMapper {
	return &DeviceSessionMapperImpl{}
}

func (m *DeviceSessionMapperImpl) ToEntity(model *models.DeviceSessionModel) (*playback.DeviceSession, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := playback.ReconstructDeviceSession(
		model.ID,
		model.ScopeID,
		model.AccountID,
		model.DeviceID,
		vo.DeviceClass(model.DeviceType),
		playback.SessionStatus(model.Status),
		model.LastActivityAt,
		model.CreatedAt,
		model.ClosedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct device session entity: %w", err)
	}

	return entity, nil
}

func (m *DeviceSessionMapperImpl) ToModel(entity *playback.DeviceSession) *models.DeviceSessionModel {
	if entity == nil {
		return nil
	}

	return &models.DeviceSessionModel{
		ID:             entity.ID(),
		ScopeID:        entity.ScopeID(),
		AccountID:      entity.AccountID(),
		DeviceID:       entity.DeviceID(),
		DeviceType:     entity.DeviceType().String(),
		Status:         string(entity.Status()),
		LastActivityAt: entity.LastActivityAt(),
		CreatedAt:      entity.CreatedAt(),
		ClosedAt:       entity.ClosedAt(),
	}
}
