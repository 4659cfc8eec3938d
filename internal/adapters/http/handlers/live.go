package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// LiveHandler exposes the reaction feed behind the live_reactions flag.
type LiveHandler struct {
	feed  http.Handler
	flags ports.FeatureFlags
}

// NewLiveHandler creates a live handler serving feed, usually a *live.Hub.
func NewLiveHandler(feed http.Handler, flags ports.FeatureFlags) *LiveHandler {
	return &LiveHandler{feed: feed, flags: flags}
}

// Reactions handles GET /ws/reactions. The feed is reported missing while
// the flag is off.
func (h *LiveHandler) Reactions(c *gin.Context) {
	if h.flags != nil && !h.flags.IsEnabled(c.Request.Context(), ports.FlagLiveReactions, true) {
		c.JSON(http.StatusNotFound, dto.NewStatusError(dto.ReactionErrorNotFound))
		return
	}

	h.feed.ServeHTTP(c.Writer, c.Request)
}

// RegisterLiveRoutes registers /ws/reactions on rg.
func (h *LiveHandler) RegisterLiveRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/reactions", h.Reactions)
}
