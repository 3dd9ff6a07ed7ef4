package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/config"
	"github.com/phrazzld/podcast-api/internal/platform/memory"
	"github.com/phrazzld/podcast-api/internal/platform/postgres"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/phrazzld/podcast-api/internal/service/auth"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	repos     store.Repositories
	tokens    auth.TokenService
	passwords *auth.BcryptVerifier

	userService    service.UserService
	podcastService service.PodcastService

	registry *prometheus.Registry
}

// newApplication builds every dependency from cfg. With the postgres driver
// the schema is migrated up before the services are created.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwords = auth.NewBcryptVerifier(cfg.Auth.BcryptCost)

	app.repos, err = openRepositories(ctx, cfg, app.passwords, logger)
	if err != nil {
		return nil, err
	}

	app.userService = service.NewUserService(app.repos.Users(), app.tokens, app.passwords, logger)
	app.podcastService = service.NewPodcastService(app.repos.Podcasts(), app.repos.Episodes(), logger)

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// openRepositories selects the persistence layer named by cfg.Database.Driver.
func openRepositories(
	ctx context.Context,
	cfg *config.Config,
	hasher store.PasswordHasher,
	logger *slog.Logger,
) (store.Repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory repositories; data is lost on shutdown")
		return memory.NewRepositories(hasher), nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db, "up", logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("Database connection established")
		return postgres.NewRepositories(db, hasher, logger), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.repos != nil {
		if err := app.repos.Close(); err != nil {
			app.logger.Error("Error closing repositories", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
