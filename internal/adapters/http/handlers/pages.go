package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// PageHandler serves the HTML pages and their forms.
type PageHandler struct {
	quotes      *app.QuoteService
	submissions *app.SubmissionService
	auth        *app.AuthService
	backgrounds *app.BackgroundPicker
	cookie      SessionCookie
	loginURL    string
}

// PageHandlerConfig wires a PageHandler.
type PageHandlerConfig struct {
	Quotes      *app.QuoteService
	Submissions *app.SubmissionService
	Auth        *app.AuthService
	Backgrounds *app.BackgroundPicker
	Cookie      SessionCookie
	LoginURL    string
}

// NewPageHandler creates a page handler.
func NewPageHandler(cfg PageHandlerConfig) *PageHandler {
	if cfg.Backgrounds == nil {
		cfg.Backgrounds = app.NewBackgroundPicker(nil, nil)
	}

	return &PageHandler{
		quotes:      cfg.Quotes,
		submissions: cfg.Submissions,
		auth:        cfg.Auth,
		backgrounds: cfg.Backgrounds,
		cookie:      cfg.Cookie,
		loginURL:    cfg.LoginURL,
	}
}

// pageData is the data every page template receives.
type pageData struct {
	Title      string
	User       *domain.User
	Background string

	Quote              *domain.Quote
	Quotes             []*domain.Quote
	SourceTypes        []*domain.SourceType
	SubmissionsEnabled bool

	Form   dto.AddQuoteForm
	Errors domain.ValidationErrors

	Username string
	Next     string
}

func (h *PageHandler) page(c *gin.Context, title string) *pageData {
	return &pageData{
		Title: title,
		User:  middleware.CurrentUser(c),
	}
}

// Home handles GET /. Viewing the page counts a view of the quote shown.
func (h *PageHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	home, err := h.quotes.Home(ctx)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	data := h.page(c, "")
	data.Quote = home.Quote
	data.SourceTypes = home.SourceTypes
	data.Background = h.backgrounds.Pick()
	data.SubmissionsEnabled = h.submissions.Enabled(ctx)

	c.HTML(http.StatusOK, "home.html", data)
}

// Top handles GET /top/.
func (h *PageHandler) Top(c *gin.Context) {
	quotes, err := h.quotes.TopQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	data := h.page(c, "Top quotes")
	data.Quotes = quotes

	c.HTML(http.StatusOK, "top.html", data)
}

// LoginForm handles GET /accounts/login/.
func (h *PageHandler) LoginForm(c *gin.Context) {
	data := h.page(c, "Log in")
	data.Next = middleware.SafeNext(c.Query("next"))

	c.HTML(http.StatusOK, "login.html", data)
}

// Login handles POST /accounts/login/. Bad credentials re-render the form.
func (h *PageHandler) Login(c *gin.Context) {
	var form dto.LoginForm

	data := h.page(c, "Log in")

	if err := dto.BindFormAndValidate(c, &form); err != nil {
		data.Username = form.Username
		data.Next = middleware.SafeNext(form.Next)
		data.Errors = formErrors(dto.ValidationErrors(err))

		c.HTML(http.StatusOK, "login.html", data)

		return
	}

	next := middleware.SafeNext(form.Next)

	user, err := h.auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !domain.IsUnauthenticated(err) {
			dto.HandleError(c, err)
			return
		}

		data.Username = form.Username
		data.Next = next
		data.Errors = domain.ValidationErrors{}
		data.Errors.Add("", "Please enter a correct username and password.")

		c.HTML(http.StatusOK, "login.html", data)

		return
	}

	token, expires, err := h.auth.IssueToken(user)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(time.Until(expires).Seconds()))
	c.Redirect(http.StatusFound, next)
}

// Logout handles /accounts/logout/ by clearing the session cookie.
func (h *PageHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

// AddQuoteForm handles GET /add-quote/.
func (h *PageHandler) AddQuoteForm(c *gin.Context) {
	data, err := h.quoteFormPage(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "add_quote.html", data)
}

// AddQuote handles POST /add-quote/. Invalid input re-renders the form with
// field and form-level messages.
func (h *PageHandler) AddQuote(c *gin.Context) {
	var form dto.AddQuoteForm
	if err := c.ShouldBind(&form); err != nil {
		dto.HandleError(c, domain.NewValidationError("", "malformed form"))
		return
	}

	ctx := c.Request.Context()
	submission, parsed := parseSubmission(form)

	var err error
	if parsed == nil {
		_, err = h.submissions.Submit(ctx, middleware.CurrentUser(c), submission)
		if err == nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
	} else {
		err = h.submissions.Check(ctx, submission)
	}

	if err != nil && !domain.IsValidation(err) {
		dto.HandleError(c, err)
		return
	}

	errs := mergeFormErrors(parsed, err)

	data, err := h.quoteFormPage(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	data.Form = form
	data.Errors = errs

	c.HTML(http.StatusOK, "add_quote.html", data)
}

func (h *PageHandler) quoteFormPage(c *gin.Context) (*pageData, error) {
	ctx := c.Request.Context()

	types, err := h.quotes.ListSourceTypes(ctx)
	if err != nil {
		return nil, err
	}

	data := h.page(c, "Add a quote")
	data.SourceTypes = types
	data.SubmissionsEnabled = h.submissions.Enabled(ctx)

	return data, nil
}

// parseSubmission converts the raw form. Values that cannot be parsed are
// reported the way the service reports invalid ones.
func parseSubmission(form dto.AddQuoteForm) (app.QuoteSubmission, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}

	submission := app.QuoteSubmission{
		Text:       form.Text,
		SourceName: form.SourceName,
	}

	if raw := strings.TrimSpace(form.SourceType); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs.Add("source_type", "select a valid choice")
		}

		submission.SourceTypeID = id
	}

	weight := strings.TrimSpace(form.Weight)
	if weight == "" {
		submission.Weight = domain.DefaultWeight
	} else {
		n, err := strconv.Atoi(weight)
		if err != nil {
			errs.Add("weight", "enter a whole number")
		}

		submission.Weight = n
	}

	if len(errs) > 0 {
		return submission, errs
	}

	return submission, nil
}

// mergeFormErrors combines parse failures with the service's validation
// result. A field that failed to parse keeps only its parse message.
func mergeFormErrors(parsed domain.ValidationErrors, err error) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	for field, msgs := range parsed {
		errs[field] = append(errs[field], msgs...)
	}

	checked := domain.ValidationErrors{}
	_ = checked.Merge(err)

	for field, msgs := range checked {
		if _, ok := parsed[field]; !ok {
			errs[field] = append(errs[field], msgs...)
		}
	}

	return errs
}

// formErrors converts binding messages to the form error shape.
func formErrors(fields map[string]string) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	for field, msg := range fields {
		errs.Add(field, msg)
	}

	return errs
}

// RegisterPageRoutes registers the HTML pages. Pages that need a login
// redirect anonymous visitors to the login form.
func (h *PageHandler) RegisterPageRoutes(rg *gin.RouterGroup) {
	requireUser := middleware.RequireUser(h.loginURL)

	rg.GET("/", h.Home)
	rg.GET("/top/", h.Top)
	rg.GET("/accounts/login/", h.LoginForm)
	rg.POST("/accounts/login/", h.Login)
	rg.GET("/accounts/logout/", h.Logout)
	rg.POST("/accounts/logout/", h.Logout)
	rg.GET("/add-quote/", requireUser, h.AddQuoteForm)
	rg.POST("/add-quote/", requireUser, h.AddQuote)
}
