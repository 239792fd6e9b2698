package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reachpoint/internal/adapter/cache"
	httpadapter "reachpoint/internal/adapter/http"
	"reachpoint/internal/adapter/postgres"
	"reachpoint/internal/adapter/usecase"
	"reachpoint/internal/config"
	"reachpoint/internal/core/port"
	"reachpoint/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

// runServe loads configuration, optionally runs database migrations, opens
// the local cache and the database pool, then starts the HTTP server. On
// SIGINT or SIGTERM it shuts the server down and releases resources in
// reverse order.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	local, err := openCache(cfg)
	if err != nil {
		logger.Error("cache open error", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := local.Close(); err != nil {
			logger.Error("cache close error", slog.Any("error", err))
		}
	}()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	var remote port.SharedStore
	if !cfg.Psql.LocalOnly {
		var notifier postgres.Subscriber
		n, err := postgres.NewNotifier(cfg.Psql.Addr.String(), logger)
		if err != nil {
			logger.Warn("live updates disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := n.Close(); err != nil {
					logger.Error("listener close error", slog.Any("error", err))
				}
			}()
			notifier = n
		}
		remote = postgres.NewProgressRepository(pool, notifier)
	}

	store := usecase.NewProgressStore(local, remote, logger,
		usecase.WithWriteBuffer(cfg.Session.WriteBuffer),
		usecase.WithPushTimeout(cfg.Session.PushTimeout),
		usecase.WithFetchTimeout(cfg.Session.FetchTimeout))
	defer store.Close()

	campaigns := postgres.NewCampaignRepository(pool)
	queues := usecase.NewQueueService(postgres.NewContactRepository(pool), campaigns, logger)
	sessions := usecase.NewSessions(store, queues, logger, cfg.Session.NotesDelay,
		usecase.WithIdleTimeout(cfg.Session.IdleTimeout))
	defer sessions.CloseAll()
	followUps := usecase.NewFollowUpService(campaigns, logger)
	var exportWriter port.ExportWriter
	if !cfg.Psql.LocalOnly {
		exportWriter = postgres.NewExportRepository(pool)
	}
	exports := usecase.NewExportService(store, queues, exportWriter, logger)

	handler := httpadapter.NewHandler(sessions, store, queues, followUps, exports, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.Bool("local_only", remote == nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

type closableCache interface {
	port.LocalCache
	Close() error
}

func openCache(cfg config.Config) (closableCache, error) {
	if cfg.Cache.InMemory {
		return cache.OpenBadgerInMemory()
	}
	return cache.OpenBadger(cfg.Cache.Path())
}
