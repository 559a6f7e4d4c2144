package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/osa911/clipdesk/internal/db"
	"github.com/osa911/clipdesk/internal/identity"
	"github.com/osa911/clipdesk/internal/repository"
	"github.com/osa911/clipdesk/internal/server"
	"github.com/osa911/clipdesk/internal/tasks"
	"github.com/osa911/clipdesk/internal/telemetry"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("Starting server in %s mode", cfg.Environment)

		shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
			Endpoint:    cfg.OTLPEndpoint,
			Environment: cfg.Environment,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("Failed to flush traces: %v", err)
			}
		}()

		database, err := db.Open(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return err
		}

		verifier, err := identity.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to initialize identity provider: %w", err)
		}

		// Start session cleanup task
		store := repository.NewStore(database)
		tasks.NewSessionCleanup(store.Sessions, cfg.SessionCleanupInterval).Start(ctx)
		logger.Info("Started session cleanup task")

		return server.NewServer(cfg, database, verifier).Start(ctx)
	},
}
