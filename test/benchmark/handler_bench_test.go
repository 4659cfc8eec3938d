package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

func setupHealthHandler(checkers ...ports.HealthChecker) *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	for _, checker := range checkers {
		_ = registry.Register(checker)
	}

	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2026-01-01T00:00:00Z")

	return handlers.NewHealthHandler(registry, buildInfo, prometheus.NewRegistry())
}

// openCatalog opens a SQLite store with the given number of quotes, filling
// each source up to its active quote cap.
func openCatalog(b *testing.B, quotes int) (*storage.Store, []uuid.UUID) {
	b.Helper()

	ctx := context.Background()

	store, err := storage.Open(ctx, &storage.Config{
		Driver:   storage.DriverSQLite,
		DSN:      filepath.Join(b.TempDir(), "bench.db"),
		LogLevel: "silent",
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(b, err)
	b.Cleanup(func() { _ = store.Close() })
	require.NoError(b, store.Migrate(ctx))

	ids := make([]uuid.UUID, 0, quotes)

	var source *domain.Source

	for i := range quotes {
		if i%domain.MaxActiveQuotesPerSource == 0 {
			source = &domain.Source{Record: domain.Record{ID: uuid.New(), IsActive: true}, Name: uuid.NewString()}
			require.NoError(b, store.Sources().Create(ctx, source))
		}

		q := domain.NewQuote("Benchmark quote "+uuid.NewString(), source.ID, 1+i%10)
		require.NoError(b, store.Quotes().Create(ctx, q))

		ids = append(ids, q.ID)
	}

	return store, ids
}

func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.Liveness(createGinContext(w, req))
	}
}

// BenchmarkReadinessHandler_SQLite includes the database ping.
func BenchmarkReadinessHandler_SQLite(b *testing.B) {
	store, _ := openCatalog(b, 0)
	handler := setupHealthHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.Readiness(createGinContext(w, req))
	}
}

func BenchmarkBuildInfoHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/build", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.BuildInfoHandler(createGinContext(w, req))
	}
}

// BenchmarkRandomQuote measures the weighted pick and view increment
// against catalogs of growing size.
func BenchmarkRandomQuote(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			store, _ := openCatalog(b, size)
			quotes := app.NewQuoteService(app.QuoteServiceConfig{Store: store, Random: app.NewRandomizer()})
			ctx := context.Background()

			b.ReportAllocs()

			for b.Loop() {
				if _, err := quotes.RandomQuote(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLike(b *testing.B) {
	store, ids := openCatalog(b, 3)
	quotes := app.NewQuoteService(app.QuoteServiceConfig{Store: store, Random: app.NewRandomizer()})
	user := domain.NewUser("bench", "", false, false)
	ctx := context.Background()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := quotes.React(ctx, user, ids[0], domain.ReactionLike); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPickWeighted(b *testing.B) {
	candidates := make([]*domain.Quote, 1000)
	for i := range candidates {
		candidates[i] = domain.NewQuote("q", uuid.Nil, 1+i%10)
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = domain.PickWeighted(candidates, 0.73)
	}
}
