package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vistream-io/vistream/internal/infrastructure/config"
	"github.com/vistream-io/vistream/internal/infrastructure/database"
	"github.com/vistream-io/vistream/internal/infrastructure/migration"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply the database schema for the admission engine.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return migration.NewManager(env).Migrate(database.Get())
}
