package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
)

type ContentMapper interface {
	ToEntity(model *models.ContentModel) (*content.Record, error)
}

type ContentMapperImpl struct{}

func NewContentMapper() ContentMapper {
	return &ContentMapperImpl{}
}

func (m *ContentMapperImpl) ToEntity(model *models.ContentModel) (*content.Record, error) {
	if model == nil {
		return nil, nil
	}

	var categories []content.Category
	if model.Categories != nil {
		if err := json.Unmarshal(model.Categories, &categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
	}

	var allowedRegions []string
	if model.AllowedRegions != nil {
		if err := json.Unmarshal(model.AllowedRegions, &allowedRegions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal allowed regions: %w", err)
		}
	}

	var blockedCountries []string
	if model.BlockedCountries != nil {
		if err := json.Unmarshal(model.BlockedCountries, &blockedCountries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal blocked countries: %w", err)
		}
	}

	geoRules := content.GeoRules{
		IsGeorestricted:  model.IsGeorestricted,
		AllowedRegions:   allowedRegions,
		BlockedCountries: blockedCountries,
	}

	var rightsStart, rightsEnd time.Time
	if model.RightsStart != nil {
		rightsStart = *model.RightsStart
	}
	if model.RightsEnd != nil {
		rightsEnd = *model.RightsEnd
	}

	entity, err := content.ReconstructRecord(
		model.ID,
		model.Title,
		content.Status(model.Status),
		content.Visibility(model.Visibility),
		content.AgeRating(model.AgeRating),
		categories,
		geoRules,
		content.RightsWindow{Start: rightsStart, End: rightsEnd},
		model.PaywallFee,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct content entity: %w", err)
	}

	return entity, nil
}
