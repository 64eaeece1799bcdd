// File: cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log" // Standard log for messages before zap is active
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adoptaunpana_backend/internal/config"
	"adoptaunpana_backend/internal/platform/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	command := ""
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "setup":
		err = runSetup(cfg, appLogger)
	case "sync-listings":
		err = runListingSync(cfg, appLogger, os.Args[2:])
	case "", "serve":
		err = startServer(cfg, appLogger)
	default:
		err = fmt.Errorf("unknown command %q (expected serve, setup or sync-listings)", command)
	}
	if err != nil {
		appLogger.Error("Command failed", zap.String("command", command), zap.Error(err))
		_ = appLogger.Sync()
		os.Exit(1)
	}
}

func startServer(cfg *config.Config, appLogger *zap.Logger) error {
	server, cleanup, err := initializeServer(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	defer cleanup()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		appLogger.Info("Received signal, shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	appLogger.Info("Server shutdown complete.")
	return nil
}

// runSetup migrates the schema and seeds reference data once, then exits.
func runSetup(cfg *config.Config, appLogger *zap.Logger) error {
	svc, cleanup, err := initializeSetup(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize setup: %w", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancel()

	result, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	appLogger.Info("Database setup completed successfully",
		zap.Strings("applied", result.Schema.Applied),
		zap.Strings("skipped", result.Schema.Skipped),
		zap.Any("failed", result.Schema.Failed),
		zap.Int64("provinces_seeded", result.Seeded.Provinces),
		zap.Int64("cities_seeded", result.Seeded.Cities),
	)
	return nil
}

// runListingSync exports every active listing to Elasticsearch.
func runListingSync(cfg *config.Config, appLogger *zap.Logger, args []string) error {
	flags := flag.NewFlagSet("sync-listings", flag.ContinueOnError)
	batchSize := flags.Int("batch-size", 100, "Batch size for syncing listings")
	esRefresh := flags.String("es-refresh", "false", "Elasticsearch refresh policy (true, false, wait_for)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	syncer, cleanup, err := initializeSyncer(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize listing sync: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := syncer.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("failed to create/verify Elasticsearch index: %w", err)
	}
	report, err := syncer.Run(ctx, *batchSize, *esRefresh)
	if err != nil {
		return err
	}
	appLogger.Info("Listing synchronization completed successfully.",
		zap.Int("batches", report.Batches),
		zap.Int("synced", report.Synced),
	)
	return nil
}
