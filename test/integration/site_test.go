//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotebook/internal/adapters/flags"
	httpadapter "github.com/jsamuelsen/quotebook/internal/adapters/http"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/live"
	"github.com/jsamuelsen/quotebook/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const (
	sessionCookie = "quotebook_session"
	loginURL      = "/accounts/login/"
)

// site is the whole application served in-process over a temporary
// SQLite database, wired the way cmd/service wires it.
type site struct {
	server *httptest.Server
	store  *storage.Store
	auth   *app.AuthService
	quotes *app.QuoteService
	hub    *live.Hub
}

func startSite(tb testing.TB) *site {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	tb.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.Open(ctx, &storage.Config{
		Driver:   storage.DriverSQLite,
		DSN:      filepath.Join(tb.TempDir(), "integration.db"),
		LogLevel: "silent",
		Logger:   logger,
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = store.Close() })

	require.NoError(tb, store.Migrate(ctx))

	featureFlags := flags.NewStatic(map[string]bool{
		ports.FlagQuoteSubmissions: true,
		ports.FlagLiveReactions:    true,
	})

	hub := live.NewHub(live.Config{PingInterval: time.Second, Logger: logger})
	go hub.Run(ctx)

	metrics := telemetry.NewQuoteMetrics(prometheus.NewRegistry())

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:   store,
		Random:  app.NewRandomizer(),
		Events:  hub,
		Metrics: metrics,
		Logger:  logger,
	})
	auth := app.NewAuthService(app.AuthServiceConfig{
		Users:      store.Users(),
		Secret:     "integration-secret-0123456789abcdef",
		BcryptCost: bcrypt.MinCost,
		Logger:     logger,
	})
	submissions := app.NewSubmissionService(app.SubmissionServiceConfig{
		Store:   store,
		Flags:   featureFlags,
		Metrics: metrics,
		Logger:  logger,
	})
	admin := app.NewAdminService(app.AdminServiceConfig{Store: store, Quotes: quotes, Logger: logger})

	registry := ports.NewHealthRegistry()
	require.NoError(tb, registry.Register(store))

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:      logger,
		ServiceName: "quotebook-integration",
		Sessions:    auth,
		CookieName:  sessionCookie,
		Health:      handlers.NewHealthHandler(registry, handlers.BuildInfo{Version: "integration"}, prometheus.NewRegistry()),
		Pages: handlers.NewPageHandler(handlers.PageHandlerConfig{
			Quotes:      quotes,
			Submissions: submissions,
			Auth:        auth,
			Cookie:      handlers.SessionCookie{Name: sessionCookie},
			LoginURL:    loginURL,
		}),
		Reactions: handlers.NewReactionHandler(quotes, loginURL),
		Quotes:    handlers.NewQuoteHandler(quotes),
		Admin:     handlers.NewAdminHandler(admin),
		Live:      handlers.NewLiveHandler(hub, featureFlags),
	})

	server := httptest.NewServer(engine)
	tb.Cleanup(server.Close)

	return &site{server: server, store: store, auth: auth, quotes: quotes, hub: hub}
}

// session creates an account and returns its session token.
func (s *site) session(ctx context.Context, username string, staff bool) (string, error) {
	user, err := s.auth.CreateUser(ctx, username, "integration password", staff, false)
	if err != nil {
		return "", err
	}

	token, _, err := s.auth.IssueToken(user)

	return token, err
}

func (s *site) sourceType(ctx context.Context, name string) (*domain.SourceType, error) {
	st := &domain.SourceType{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: name}

	return st, s.store.SourceTypes().Create(ctx, st)
}

func (s *site) source(ctx context.Context, name string) (*domain.Source, error) {
	src := &domain.Source{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: name}

	return src, s.store.Sources().Create(ctx, src)
}

func (s *site) quote(ctx context.Context, text string, sourceID uuid.UUID, weight int) (*domain.Quote, error) {
	q := domain.NewQuote(text, sourceID, weight)

	return q, s.store.Quotes().Create(ctx, q)
}
