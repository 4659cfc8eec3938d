// Package main is the entry point for the quotebook web server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotebook/internal/adapters/flags"
	"github.com/jsamuelsen/quotebook/internal/adapters/http"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/live"
	"github.com/jsamuelsen/quotebook/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 1. Configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 3. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Database
	store, err := storage.Open(ctx, storage.NewConfig(cfg.Database, logger))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing database", slog.Any("error", closeErr))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	if cfg.Services.Quote.HealthCheck {
		quoteClient, err := newQuoteClient(cfg, logger)
		if err != nil {
			return err
		}

		if err := healthRegistry.Register(quoteClient); err != nil {
			return fmt.Errorf("registering quote client health check: %w", err)
		}
	}

	// 5. Feature flags and the live reaction feed
	featureFlags := flags.NewStatic(cfg.Features)

	hub := live.NewHub(live.Config{
		SendBuffer:   cfg.Live.SendBuffer,
		WriteTimeout: cfg.Live.WriteTimeout,
		PingInterval: cfg.Live.PingInterval,
		Logger:       logger,
	})

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()

	go hub.Run(hubCtx)

	// 6. Application services
	metrics := telemetry.NewQuoteMetrics(prometheus.DefaultRegisterer)

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:   store,
		Random:  app.NewRandomizer(),
		Events:  hub,
		Metrics: metrics,
		Logger:  logger,
	})

	authService := app.NewAuthService(app.AuthServiceConfig{
		Users:      store.Users(),
		Secret:     cfg.Auth.SessionSecret,
		TTL:        cfg.Auth.SessionTTL,
		BcryptCost: cfg.Auth.BcryptCost,
		Logger:     logger,
	})

	submissionService := app.NewSubmissionService(app.SubmissionServiceConfig{
		Store:   store,
		Flags:   featureFlags,
		Metrics: metrics,
		Logger:  logger,
	})

	adminService := app.NewAdminService(app.AdminServiceConfig{
		Store:  store,
		Quotes: quoteService,
		Logger: logger,
	})

	// 7. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	buildInfo.Name = cfg.App.Name
	buildInfo.Environment = cfg.App.Environment

	server := http.New(&cfg.Server, logger)
	server.RegisterOnShutdown(stopHub)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: cfg.Telemetry.ServiceName,
		Timeout:     cfg.Server.RequestTimeout,
		StaticDir:   cfg.UI.StaticDir,
		Sessions:    authService,
		CookieName:  cfg.Auth.CookieName,
		Health:      handlers.NewHealthHandler(healthRegistry, buildInfo, prometheus.DefaultGatherer),
		Pages: handlers.NewPageHandler(handlers.PageHandlerConfig{
			Quotes:      quoteService,
			Submissions: submissionService,
			Auth:        authService,
			Backgrounds: app.NewBackgroundPicker(cfg.UI.BackgroundImages, nil),
			Cookie:      handlers.SessionCookie{Name: cfg.Auth.CookieName, Secure: cfg.Auth.SecureCookie},
			LoginURL:    cfg.Auth.LoginURL,
		}),
		Reactions: handlers.NewReactionHandler(quoteService, cfg.Auth.LoginURL),
		Quotes:    handlers.NewQuoteHandler(quoteService),
		Admin:     handlers.NewAdminHandler(adminService),
		Live:      handlers.NewLiveHandler(hub, featureFlags),
	})

	// 8. Serve until SIGINT or SIGTERM, then drain
	serveCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(serveCtx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}

// newQuoteClient builds the catalog adapter used by imports and the readiness probe.
func newQuoteClient(cfg *config.Config, logger *slog.Logger) (*acl.QuoteClient, error) {
	clientCfg := clients.NewConfig(cfg.Services.Quote.Name, cfg.Services.Quote.BaseURL, cfg.Client)
	clientCfg.Logger = logger

	httpClient, err := clients.New(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating quote client: %w", err)
	}

	return acl.NewQuoteClient(acl.QuoteClientConfig{Client: httpClient, Logger: logger}), nil
}
