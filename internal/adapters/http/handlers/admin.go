package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// AdminHandler serves the staff JSON API under /admin/api. Reads are
// unfiltered; DELETE soft-deletes and POST .../restore undoes it.
type AdminHandler struct {
	admin *app.AdminService
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(admin *app.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Source types.

// ListSourceTypes handles GET /admin/api/source-types[?active=bool].
func (h *AdminHandler) ListSourceTypes(c *gin.Context) {
	var filter dto.ActiveFilter
	if err := dto.BindQueryAndValidate(c, &filter); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	types, err := h.admin.ListSourceTypes(c.Request.Context(), filter.Active)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceTypeResponses(types))
}

// CreateSourceType handles POST /admin/api/source-types.
func (h *AdminHandler) CreateSourceType(c *gin.Context) {
	var req dto.SourceTypeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	st, err := h.admin.CreateSourceType(c.Request.Context(), middleware.CurrentUser(c), req.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSourceTypeResponse(st))
}

// RenameSourceType handles PATCH /admin/api/source-types/:id.
func (h *AdminHandler) RenameSourceType(c *gin.Context) {
	id, ok := parseID(c, "source type")
	if !ok {
		return
	}

	var req dto.SourceTypeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	st, err := h.admin.RenameSourceType(c.Request.Context(), middleware.CurrentUser(c), id, req.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceTypeResponse(st))
}

// Sources.

// ListSources handles GET /admin/api/sources.
func (h *AdminHandler) ListSources(c *gin.Context) {
	sources, err := h.admin.ListSources(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceResponses(sources))
}

// GetSource handles GET /admin/api/sources/:id.
func (h *AdminHandler) GetSource(c *gin.Context) {
	id, ok := parseID(c, "source")
	if !ok {
		return
	}

	source, err := h.admin.GetSource(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceResponse(source))
}

// CreateSource handles POST /admin/api/sources.
func (h *AdminHandler) CreateSource(c *gin.Context) {
	in, ok := bindSource(c)
	if !ok {
		return
	}

	source, err := h.admin.CreateSource(c.Request.Context(), middleware.CurrentUser(c), in)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSourceResponse(source))
}

// UpdateSource handles PUT /admin/api/sources/:id.
func (h *AdminHandler) UpdateSource(c *gin.Context) {
	id, ok := parseID(c, "source")
	if !ok {
		return
	}

	in, ok := bindSource(c)
	if !ok {
		return
	}

	source, err := h.admin.UpdateSource(c.Request.Context(), middleware.CurrentUser(c), id, in)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSourceResponse(source))
}

func bindSource(c *gin.Context) (app.SourceInput, bool) {
	var req dto.SourceRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return app.SourceInput{}, false
	}

	in := app.SourceInput{Name: req.Name}

	if req.SourceTypeID != nil {
		// Validated as a UUID by the struct tag.
		typeID := uuid.MustParse(*req.SourceTypeID)
		in.SourceTypeID = &typeID
	}

	return in, true
}

// Quotes.

// ListQuotes handles GET /admin/api/quotes with cursor pagination, newest
// first, over active and deleted quotes.
func (h *AdminHandler) ListQuotes(c *gin.Context) {
	var req dto.QuoteListRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	page, err := req.StorePage()
	if err != nil {
		dto.AbortWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
		return
	}

	filter := ports.QuoteFilter{Active: req.Active}

	if req.SourceID != "" {
		sourceID := uuid.MustParse(req.SourceID)
		filter.SourceID = &sourceID
	}

	quotes, err := h.admin.ListQuotes(c.Request.Context(), filter, page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapPage(dto.NewPageResponse(quotes, req.Size(), quotePosition), dto.NewQuoteResponse))
}

func quotePosition(q *domain.Quote) ports.PageCursor {
	return ports.PageCursor{CreatedAt: q.CreatedAt, ID: q.ID}
}

// GetQuote handles GET /admin/api/quotes/:id.
func (h *AdminHandler) GetQuote(c *gin.Context) {
	id, ok := parseID(c, "quote")
	if !ok {
		return
	}

	quote, err := h.admin.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuote handles POST /admin/api/quotes. The per-source cap applies.
func (h *AdminHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	quote, err := h.admin.CreateQuote(c.Request.Context(), middleware.CurrentUser(c), app.NewQuoteInput{
		Text:     req.Text,
		SourceID: uuid.MustParse(req.SourceID),
		Weight:   req.Weight,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// UpdateQuote handles PATCH /admin/api/quotes/:id.
func (h *AdminHandler) UpdateQuote(c *gin.Context) {
	id, ok := parseID(c, "quote")
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	upd := app.QuoteUpdate{
		Text:     req.Text,
		Weight:   req.Weight,
		Views:    req.Views,
		Likes:    req.Likes,
		Dislikes: req.Dislikes,
	}

	if req.SourceID != nil {
		sourceID := uuid.MustParse(*req.SourceID)
		upd.SourceID = &sourceID
	}

	quote, err := h.admin.UpdateQuote(c.Request.Context(), middleware.CurrentUser(c), id, upd)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// setActive builds the soft delete and restore handlers of one entity.
func setActive(
	entity string,
	active bool,
	apply func(c *gin.Context, actor *domain.User, id uuid.UUID, active bool) error,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, entity)
		if !ok {
			return
		}

		if err := apply(c, middleware.CurrentUser(c), id, active); err != nil {
			dto.HandleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// RegisterAdminRoutes registers the admin API. The caller must guard rg
// with middleware.RequireStaff.
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	types := rg.Group("/source-types")
	types.GET("", h.ListSourceTypes)
	types.POST("", h.CreateSourceType)
	types.PATCH("/:id", h.RenameSourceType)
	types.DELETE("/:id", setActive("source type", false, h.setSourceTypeActive))
	types.POST("/:id/restore", setActive("source type", true, h.setSourceTypeActive))

	sources := rg.Group("/sources")
	sources.GET("", h.ListSources)
	sources.POST("", h.CreateSource)
	sources.GET("/:id", h.GetSource)
	sources.PUT("/:id", h.UpdateSource)
	sources.DELETE("/:id", setActive("source", false, h.setSourceActive))
	sources.POST("/:id/restore", setActive("source", true, h.setSourceActive))

	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.GET("/:id", h.GetQuote)
	quotes.PATCH("/:id", h.UpdateQuote)
	quotes.DELETE("/:id", setActive("quote", false, h.setQuoteActive))
	quotes.POST("/:id/restore", setActive("quote", true, h.setQuoteActive))
}

func (h *AdminHandler) setSourceTypeActive(c *gin.Context, actor *domain.User, id uuid.UUID, active bool) error {
	return h.admin.SetSourceTypeActive(c.Request.Context(), actor, id, active)
}

func (h *AdminHandler) setSourceActive(c *gin.Context, actor *domain.User, id uuid.UUID, active bool) error {
	return h.admin.SetSourceActive(c.Request.Context(), actor, id, active)
}

func (h *AdminHandler) setQuoteActive(c *gin.Context, actor *domain.User, id uuid.UUID, active bool) error {
	return h.admin.SetQuoteActive(c.Request.Context(), actor, id, active)
}
