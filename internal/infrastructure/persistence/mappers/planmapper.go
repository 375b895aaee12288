package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/vistream-io/vistream/internal/domain/subscription"
	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	var classNames []string
	if model.DeviceClasses != nil {
		if err := json.Unmarshal(model.DeviceClasses, &classNames); err != nil {
			return nil, fmt.Errorf("failed to unmarshal device classes: %w", err)
		}
	}

	deviceClasses := make([]vo.DeviceClass, 0, len(classNames))
	for _, name := range classNames {
		dc := vo.DeviceClass(name)
		if !dc.IsValid() {
			return nil, fmt.Errorf("invalid device class: %s", name)
		}
		deviceClasses = append(deviceClasses, dc)
	}

	entity, err := subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Slug,
		vo.PlanTier(model.Tier),
		model.MaxDevices,
		model.MaxStreams,
		deviceClasses,
		subscription.PlanStatus(model.Status),
		model.SortOrder,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}
