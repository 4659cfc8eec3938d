package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteHandler handles the public JSON API.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random
// Returns a weighted random quote and counts the view.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if quote == nil {
		dto.HandleError(c, domain.NewNotFoundError("quote", ""))
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetTopQuotes handles GET /api/v1/quotes/top
//
// @Summary List the most liked quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/quotes/top [get]
func (h *QuoteHandler) GetTopQuotes(c *gin.Context) {
	quotes, err := h.service.TopQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// GetQuoteByID handles GET /api/v1/quotes/:id
// Returns an active quote by its identifier.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	id, ok := parseID(c, "quote")
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// ListSourceTypes handles GET /api/v1/source-types
//
// @Summary List active source types
// @Tags source-types
// @Produce json
// @Success 200 {array} dto.SourceTypeResponse
// @Router /api/v1/source-types [get]
func (h *QuoteHandler) ListSourceTypes(c *gin.Context) {
	types, err := h.service.ListSourceTypes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceTypeResponses(types))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/top", h.GetTopQuotes)
	quotes.GET("/:id", h.GetQuoteByID)

	rg.GET("/source-types", h.ListSourceTypes)
}

// parseID reads the :id path parameter. A malformed id cannot name a row,
// so it is answered with 404 like an unknown one.
func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	raw := c.Param("id")

	id, err := uuid.Parse(raw)
	if err != nil {
		dto.HandleError(c, domain.NewNotFoundError(entity, raw))
		return uuid.Nil, false
	}

	return id, true
}
