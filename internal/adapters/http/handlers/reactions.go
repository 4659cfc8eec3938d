package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

// ReactionHandler serves the like and dislike endpoints called by the page script.
type ReactionHandler struct {
	quotes   *app.QuoteService
	loginURL string
}

// NewReactionHandler creates a reaction handler.
func NewReactionHandler(quotes *app.QuoteService, loginURL string) *ReactionHandler {
	return &ReactionHandler{quotes: quotes, loginURL: loginURL}
}

// Like handles POST /like/:id.
func (h *ReactionHandler) Like(c *gin.Context) {
	h.react(c, domain.ReactionLike)
}

// Dislike handles POST /dislike/:id.
func (h *ReactionHandler) Dislike(c *gin.Context) {
	h.react(c, domain.ReactionDislike)
}

func (h *ReactionHandler) react(c *gin.Context, kind domain.Reaction) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewStatusError(dto.ReactionErrorNotFound))
		return
	}

	quote, err := h.quotes.React(c.Request.Context(), middleware.CurrentUser(c), id, kind)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.NewReactionResponse(quote, kind))
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewStatusError(dto.ReactionErrorNotFound))
	case domain.IsUnauthenticated(err):
		resp := dto.NewStatusError(dto.ReactionErrorAuthRequired)
		resp.LoginURL = middleware.LoginURL(h.loginURL, "/")
		c.JSON(http.StatusForbidden, resp)
	default:
		logging.FromContext(c.Request.Context()).Error("reaction failed", "error", err, "quote_id", id.String())
		c.JSON(http.StatusInternalServerError, dto.NewStatusError("internal_error"))
	}
}

// MethodNotAllowed answers every verb but POST on the reaction paths.
func (h *ReactionHandler) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, dto.NewStatusError(dto.ReactionErrorMethodNotAllowed))
}

var nonPostMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// RegisterReactionRoutes registers /like/:id and /dislike/:id, with and
// without the trailing slash.
func (h *ReactionHandler) RegisterReactionRoutes(rg *gin.RouterGroup) {
	requireUser := middleware.RequireUserJSON(h.loginURL)

	for _, route := range []struct {
		path    string
		handler gin.HandlerFunc
	}{
		{"/like/:id", h.Like},
		{"/dislike/:id", h.Dislike},
	} {
		for _, path := range []string{route.path, route.path + "/"} {
			rg.POST(path, requireUser, route.handler)
			for _, method := range nonPostMethods {
				rg.Handle(method, path, h.MethodNotAllowed)
			}
		}
	}
}
