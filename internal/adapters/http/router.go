package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when RouterConfig.Timeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains everything SetupRouter mounts. Nil handlers are
// skipped.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	// Timeout is the deadline of JSON API requests.
	Timeout time.Duration

	// StaticDir is served under /static/ when set.
	StaticDir string

	// Sessions resolves the cookie named CookieName on every request.
	Sessions   middleware.SessionResolver
	CookieName string

	Health    *handlers.HealthHandler
	Pages     *handlers.PageHandler
	Reactions *handlers.ReactionHandler
	Quotes    *handlers.QuoteHandler
	Admin     *handlers.AdminHandler
	Live      *handlers.LiveHandler
}

// SetupRouter configures middleware and routes on engine.
// Middleware runs in this order:
//  1. ContextLogger - request logger in the context
//  2. Recovery - catch panics
//  3. Request ID and Correlation ID
//  4. OpenTelemetry tracing and request metrics
//  5. Logging - skips /-/ and /static/
//  6. Session - loads the logged-in user
//
// Routes:
//   - /-/ probes, build info and metrics
//   - / pages, /like/:id/ and /dislike/:id/
//   - /api/v1/ public JSON API, with a request deadline
//   - /admin/api/ staff JSON API, with a request deadline
//   - /ws/reactions live reaction feed
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithErrorCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.URL.Path)
	})
	engine.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, dto.NewStatusError(dto.ReactionErrorMethodNotAllowed))
	})

	engine.Use(
		middleware.ContextLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutes(engine.Group("/-"))
	}

	if cfg.StaticDir != "" {
		engine.Static("/static", cfg.StaticDir)
	}

	site := engine.Group("")
	if cfg.Sessions != nil {
		site.Use(middleware.Session(cfg.Sessions, cfg.CookieName))
	}

	if cfg.Pages != nil {
		engine.SetHTMLTemplate(handlers.Templates())
		cfg.Pages.RegisterPageRoutes(site)
	}

	if cfg.Reactions != nil {
		cfg.Reactions.RegisterReactionRoutes(site)
	}

	if cfg.Live != nil {
		cfg.Live.RegisterLiveRoutes(site)
	}

	if cfg.Quotes != nil {
		cfg.Quotes.RegisterQuoteRoutes(site.Group("/api/v1", middleware.Timeout(cfg.Timeout)))
	}

	if cfg.Admin != nil {
		cfg.Admin.RegisterAdminRoutes(site.Group("/admin/api", middleware.RequireStaff(), middleware.Timeout(cfg.Timeout)))
	}
}
