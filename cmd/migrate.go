package cmd

import (
	"github.com/spf13/cobra"

	config "taskmarket.com/taskmarket/internal/configs"
	repository "taskmarket.com/taskmarket/internal/repositories"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := repository.Migrate(database); err != nil {
			return err
		}

		logger.Info("database schema migrated", "driver", cfg.DatabaseDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
