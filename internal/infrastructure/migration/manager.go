package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vistream-io/vistream/internal/infrastructure/persistence/models"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// Manager runs schema migrations for the admission engine's tables.
type Manager struct {
	environment string
}

// NewManager creates a new migration manager
func NewManager(environment string) *Manager {
	return &Manager{environment: environment}
}

// Migrate applies the schema for every persistence model
func (m *Manager) Migrate(db *gorm.DB) error {
	logger.Info("running schema migration", "environment", m.environment)

	err := db.AutoMigrate(
		&models.AccountModel{},
		&models.SubscriptionModel{},
		&models.PlanModel{},
		&models.ContentModel{},
		&models.ProfileRestrictionModel{},
		&models.ParentalOverrideModel{},
		&models.DeviceSessionModel{},
		&models.AdmissionAuditModel{},
	)
	if err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	logger.Info("schema migration completed")
	return nil
}
