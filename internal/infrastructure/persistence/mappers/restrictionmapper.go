package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/vistream-io/vistream/internal/domain/content"
	"github.com/vistream-io/vistream/internal/domain/profile"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
)

type RestrictionMapper interface {
	ToEntity(model *models.ProfileRestrictionModel) (*profile.Restriction, error)
}

type RestrictionMapperImpl struct{}

func NewRestrictionMapper() RestrictionMapper {
	return &RestrictionMapperImpl{}
}

func (m *RestrictionMapperImpl) ToEntity(model *models.ProfileRestrictionModel) (*profile.Restriction, error) {
	if model == nil {
		return nil, nil
	}

	var blockedCategories []string
	if model.BlockedCategories != nil {
		if err := json.Unmarshal(model.BlockedCategories, &blockedCategories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal blocked categories: %w", err)
		}
	}

	allowed, err := windowFromColumns(model.AllowedStart, model.AllowedEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid allowed window: %w", err)
	}
	bedtime, err := windowFromColumns(model.BedtimeStart, model.BedtimeEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid bedtime window: %w", err)
	}

	return &profile.Restriction{
		MaxAgeRating:      content.AgeRating(model.MaxAgeRating),
		BlockedCategories: blockedCategories,
		Allowed:           allowed,
		Bedtime:           bedtime,
	}, nil
}

// windowFromColumns builds a clock window from a nullable column pair.
// Both columns must be set for the window to exist.
func windowFromColumns(start, end *int) (*profile.ClockWindow, error) {
	if start == nil || end == nil {
		return nil, nil
	}
	window, err := profile.NewClockWindow(*start, *end)
	if err != nil {
		return nil, err
	}
	return &window, nil
}
