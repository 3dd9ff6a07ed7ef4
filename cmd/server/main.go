// Package main implements the entry point for the podcast API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/phrazzld/podcast-api/internal/config"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		log.Printf("podcast-api: %v", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration and either executes a migration command or serves
// HTTP until ctx is canceled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, l)
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// handleMigrations runs one goose command against the configured database.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, l *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q", command)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %s driver, configured driver is %s",
			config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error("Error closing database connection", "error", err)
		}
	}()

	return postgres.Migrate(ctx, db, command, l)
}
