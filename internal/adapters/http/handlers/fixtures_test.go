package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const (
	testCookie   = "session"
	testLoginURL = "/accounts/login/"
	testPassword = "correct horse battery"
	testSecret   = "0123456789abcdef0123456789abcdef"
)

// testEnv wires the handlers to real services over a temporary SQLite
// database, the way the service binary does.
type testEnv struct {
	store  *storage.Store
	quotes *app.QuoteService
	auth   *app.AuthService
	admin  *app.AdminService
	router *gin.Engine
}

type envOption func(*app.SubmissionServiceConfig)

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.Open(ctx, &storage.Config{
		Driver:   storage.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "handlers.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(ctx))

	quotes := app.NewQuoteService(app.QuoteServiceConfig{Store: store, Logger: logger})
	auth := app.NewAuthService(app.AuthServiceConfig{
		Users:      store.Users(),
		Secret:     testSecret,
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
		Logger:     logger,
	})
	admin := app.NewAdminService(app.AdminServiceConfig{Store: store, Quotes: quotes, Logger: logger})

	subCfg := app.SubmissionServiceConfig{Store: store, Logger: logger}
	for _, opt := range opts {
		opt(&subCfg)
	}

	submissions := app.NewSubmissionService(subCfg)

	router := gin.New()
	router.SetHTMLTemplate(Templates())
	router.Use(middleware.Session(auth, testCookie))

	NewPageHandler(PageHandlerConfig{
		Quotes:      quotes,
		Submissions: submissions,
		Auth:        auth,
		Cookie:      SessionCookie{Name: testCookie},
		LoginURL:    testLoginURL,
	}).RegisterPageRoutes(&router.RouterGroup)

	NewReactionHandler(quotes, testLoginURL).RegisterReactionRoutes(&router.RouterGroup)
	NewQuoteHandler(quotes).RegisterQuoteRoutes(router.Group("/api/v1"))

	adminAPI := router.Group("/admin/api", middleware.RequireStaff())
	NewAdminHandler(admin).RegisterAdminRoutes(adminAPI)

	return &testEnv{store: store, quotes: quotes, auth: auth, admin: admin, router: router}
}

func withFlags(flags ports.FeatureFlags) envOption {
	return func(cfg *app.SubmissionServiceConfig) { cfg.Flags = flags }
}

// user creates an account and returns its session cookie.
func (e *testEnv) user(t *testing.T, username string, staff bool) *http.Cookie {
	t.Helper()

	u, err := e.auth.CreateUser(context.Background(), username, testPassword, staff, false)
	require.NoError(t, err)

	token, _, err := e.auth.IssueToken(u)
	require.NoError(t, err)

	return &http.Cookie{Name: testCookie, Value: token}
}

func (e *testEnv) sourceType(t *testing.T, name string) *domain.SourceType {
	t.Helper()

	st := &domain.SourceType{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: name}
	require.NoError(t, e.store.SourceTypes().Create(context.Background(), st))

	return st
}

func (e *testEnv) source(t *testing.T, name string, typeID *uuid.UUID) *domain.Source {
	t.Helper()

	src := &domain.Source{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: name, SourceTypeID: typeID}
	require.NoError(t, e.store.Sources().Create(context.Background(), src))

	return src
}

func (e *testEnv) quote(t *testing.T, text string, sourceID uuid.UUID) *domain.Quote {
	t.Helper()

	q := domain.NewQuote(text, sourceID, 1)
	require.NoError(t, e.store.Quotes().Create(context.Background(), q))

	return q
}

func (e *testEnv) do(t *testing.T, method, target string, body io.Reader, cookie *http.Cookie, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func (e *testEnv) postForm(t *testing.T, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	return e.do(t, http.MethodPost, target, strings.NewReader(form.Encode()), cookie,
		"Content-Type", "application/x-www-form-urlencoded")
}

func (e *testEnv) postJSON(t *testing.T, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	return e.do(t, method, target, strings.NewReader(body), cookie, "Content-Type", "application/json")
}
