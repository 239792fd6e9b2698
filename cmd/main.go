package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reachpoint/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "reachpoint",
	Short: "Call campaign execution service",
	Long: `reachpoint serves call sessions over HTTP. Operators work through a
campaign queue while progress is cached locally and shared with other
operators through PostgreSQL.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// main is the entry point of reachpoint. Exit status is 1 on any command
// error.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration and builds the process logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return cfg, nil, err
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
