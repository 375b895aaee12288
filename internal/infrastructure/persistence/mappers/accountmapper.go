package mappers

import (
	"fmt"

	"github.com/vistream-io/vistream/internal/domain/account"
	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
)

type AccountMapper interface {
	ToEntity(model *models.AccountModel) (*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := account.ReconstructAccount(
		model.ID,
		account.Status(model.Status),
		model.EmailVerified,
		model.HouseholdOwnerID,
		account.MembershipStatus(model.MembershipStatus),
		model.LegacyTrialUntil,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account entity: %w", err)
	}

	return entity, nil
}
