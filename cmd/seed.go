package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"reachpoint/internal/db"
)

var seedStudents int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo students and campaigns",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedStudents, "students", 50, "Number of students to insert")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	if err = db.Seed(cmd.Context(), pool, seedStudents); err != nil {
		logger.Error("seed error", slog.Any("error", err))
		return err
	}
	logger.Info("demo data inserted", slog.Int("students", seedStudents))
	return nil
}
