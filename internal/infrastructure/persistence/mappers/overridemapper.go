package mappers

import (
	"fmt"

	"github.com/vistream-io/vistream/internal/domain/profile"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
)

type OverrideMapper interface {
	ToEntity(model *models.ParentalOverrideModel) (*profile.ParentalOverride, error)
}

type OverrideMapperImpl struct{}

func NewOverrideMapper() OverrideMapper {
	return &OverrideMapperImpl{}
}

func (m *OverrideMapperImpl) ToEntity(model *models.ParentalOverrideModel) (*profile.ParentalOverride, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := profile.ReconstructParentalOverride(
		model.ID,
		model.ProfileID,
		model.ContentID,
		model.GrantedBy,
		model.ExpiresAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct parental override entity: %w", err)
	}

	return entity, nil
}
