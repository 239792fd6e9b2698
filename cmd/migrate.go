package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"reachpoint/internal/db"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back every migration instead")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	addr := cfg.Psql.Addr.String()
	if migrateDown {
		if err = db.Rollback(addr); err != nil {
			logger.Error("rollback error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations rolled back")
		return nil
	}
	if err = db.Migrate(addr); err != nil {
		logger.Error("migration error", slog.Any("error", err))
		return err
	}
	logger.Info("migrations applied successfully")
	return nil
}
