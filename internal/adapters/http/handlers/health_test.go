package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/mocks"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func healthRouter(t *testing.T, handler *HealthHandler) *gin.Engine {
	t.Helper()

	router := gin.New()
	handler.RegisterHealthRoutes(router.Group("/-"))

	return router
}

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	m := mocks.NewMockHealthChecker(t)
	m.EXPECT().Name().Return(name)
	m.EXPECT().Check(mock.Anything).Return(err).Maybe()

	return m
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2026-01-15T10:00:00Z")

	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2026-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := healthRouter(t, NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{}, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name         string
		checkErrs    map[string]error
		wantStatus   int
		wantBody     string
		wantMessages map[string]string
	}{
		{
			name:       "all checks healthy",
			checkErrs:  map[string]error{"database": nil, "quote-service": nil},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
		{
			name:         "database down",
			checkErrs:    map[string]error{"database": errors.New("connection refused"), "quote-service": nil},
			wantStatus:   http.StatusServiceUnavailable,
			wantBody:     `"status":"unhealthy"`,
			wantMessages: map[string]string{"database": "connection refused"},
		},
		{
			name:       "no checks registered",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := ports.NewHealthRegistry()
			for name, err := range tt.checkErrs {
				require.NoError(t, registry.Register(checker(t, name, err)))
			}

			router := healthRouter(t, NewHealthHandler(registry, BuildInfo{}, nil))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp.Checks, len(tt.checkErrs))

			for name, msg := range tt.wantMessages {
				require.Contains(t, resp.Checks, name)
				assert.Equal(t, msg, resp.Checks[name].Message)
			}
		})
	}
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	buildInfo := BuildInfo{
		Name:        "quotebook",
		Environment: "test",
		Version:     "1.2.3",
		Commit:      "def456",
		BuildTime:   "2026-02-01T12:00:00Z",
		GoVersion:   "go1.25.7",
	}

	router := healthRouter(t, NewHealthHandler(ports.NewHealthRegistry(), buildInfo, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/build", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, buildInfo, resp)
}

func TestHealthHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "quotebook_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	router := healthRouter(t, NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{}, reg))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "quotebook_test_total 1")
}
