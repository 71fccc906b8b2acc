package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cosmiccommons/c3site/backend/internal/router"
	"github.com/cosmiccommons/c3site/backend/internal/setup"
	"github.com/cosmiccommons/c3site/shared/config"
	"github.com/cosmiccommons/c3site/shared/logger"
)

const shutdownTimeout = 10 * time.Second

type schemaMigrator interface {
	Migrate(ctx context.Context) error
}

func main() {
	var configFolder string
	var migrate bool
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.BoolVar(&migrate, "migrate", false, "apply the database schema before serving")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, migrate)
	stop()
	if err != nil {
		logger.Log.Error("c3site-api stopped with error", "error", err)
		os.Exit(1)
	}
}

// run returns only after dependencies are closed, so main may exit right away.
func run(ctx context.Context, cfg *config.Config, migrate bool) error {
	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Log.Error("failed to close dependencies", "error", err)
		}
	}()

	if err := applySchema(ctx, deps.Storage, migrate); err != nil {
		return err
	}

	return serve(ctx, &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(deps),
		ReadHeaderTimeout: 5 * time.Second,
	})
}

func applySchema(ctx context.Context, m schemaMigrator, enabled bool) error {
	if !enabled {
		return nil
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	logger.Log.Info("schema applied")
	return nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
// A listener failure is returned.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("server started", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
