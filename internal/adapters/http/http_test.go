package http

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(port int, maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		MaxRequestSize:  maxBody,
	}
}

func TestServer_New(t *testing.T) {
	cfg := testServerConfig(8080, 1<<20)

	srv := New(cfg, discardLogger())

	require.NotNil(t, srv.Engine())
	assert.Equal(t, "127.0.0.1:8080", srv.srv.Addr)
	assert.Equal(t, cfg.ReadTimeout, srv.srv.ReadHeaderTimeout)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	srv := New(testServerConfig(0, 1<<20), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	hookCalled := make(chan struct{})
	srv.RegisterOnShutdown(func() { close(hookCalled) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var addr string
	select {
	case a := <-srv.Bound():
		addr = a.String()
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + addr + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-hookCalled:
	case <-time.After(time.Second):
		t.Fatal("shutdown hook not called")
	}
}

func TestServer_RunFailsOnBusyPort(t *testing.T) {
	first := New(testServerConfig(0, 1<<20), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = first.Run(ctx) }()
	addr := (<-first.Bound()).(*net.TCPAddr)

	second := New(testServerConfig(addr.Port, 1<<20), discardLogger())
	err := second.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	srv := New(testServerConfig(0, 16), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.Status(http.StatusOK)
	})

	for body, want := range map[string]int{
		"small":                    http.StatusOK,
		strings.Repeat("x", 1024): http.StatusRequestEntityTooLarge,
	} {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))

		assert.Equal(t, want, w.Code)
	}
}

// newSite mounts every handler the way the service binary does.
func newSite(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()

	ctx := context.Background()
	logger := discardLogger()

	store, err := storage.Open(ctx, &storage.Config{
		Driver:   storage.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "router.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(ctx))

	quotes := app.NewQuoteService(app.QuoteServiceConfig{Store: store, Logger: logger})
	auth := app.NewAuthService(app.AuthServiceConfig{
		Users:      store.Users(),
		Secret:     "0123456789abcdef0123456789abcdef",
		BcryptCost: bcrypt.MinCost,
		Logger:     logger,
	})
	submissions := app.NewSubmissionService(app.SubmissionServiceConfig{Store: store, Logger: logger})
	admin := app.NewAdminService(app.AdminServiceConfig{Store: store, Quotes: quotes, Logger: logger})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:      logger,
		ServiceName: "quotebook-test",
		StaticDir:   t.TempDir(),
		Sessions:    auth,
		CookieName:  "session",
		Health:      handlers.NewHealthHandler(registry, handlers.BuildInfo{Version: "test"}, prometheus.NewRegistry()),
		Pages: handlers.NewPageHandler(handlers.PageHandlerConfig{
			Quotes:      quotes,
			Submissions: submissions,
			Auth:        auth,
			Cookie:      handlers.SessionCookie{Name: "session"},
			LoginURL:    "/accounts/login/",
		}),
		Reactions: handlers.NewReactionHandler(quotes, "/accounts/login/"),
		Quotes:    handlers.NewQuoteHandler(quotes),
		Admin:     handlers.NewAdminHandler(admin),
	})

	return engine, store
}

func TestSetupRouter_Routes(t *testing.T) {
	engine, store := newSite(t)

	src := &domain.Source{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: "Dune"}
	require.NoError(t, store.Sources().Create(context.Background(), src))
	q := domain.NewQuote("Fear is the mind-killer.", src.ID, 1)
	require.NoError(t, store.Quotes().Create(context.Background(), q))

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "home page", method: http.MethodGet, target: "/", wantStatus: http.StatusOK, wantBody: "Fear is the mind-killer."},
		{name: "top page", method: http.MethodGet, target: "/top/", wantStatus: http.StatusOK, wantBody: "Top"},
		{name: "liveness", method: http.MethodGet, target: "/-/live", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "readiness", method: http.MethodGet, target: "/-/ready", wantStatus: http.StatusOK, wantBody: `"database"`},
		{name: "build", method: http.MethodGet, target: "/-/build", wantStatus: http.StatusOK, wantBody: `"version":"test"`},
		{name: "metrics", method: http.MethodGet, target: "/-/metrics", wantStatus: http.StatusOK},
		{name: "api quote", method: http.MethodGet, target: "/api/v1/quotes/" + q.ID.String(), wantStatus: http.StatusOK, wantBody: q.ID.String()},
		{name: "anonymous like", method: http.MethodPost, target: "/like/" + q.ID.String() + "/", wantStatus: http.StatusForbidden, wantBody: "auth_required"},
		{name: "get on like", method: http.MethodGet, target: "/like/" + q.ID.String() + "/", wantStatus: http.StatusMethodNotAllowed, wantBody: "method_not_allowed"},
		{name: "admin needs staff", method: http.MethodGet, target: "/admin/api/quotes", wantStatus: http.StatusForbidden, wantBody: "FORBIDDEN"},
		{name: "unknown path", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound, wantBody: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
