package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

// ContextKeyUser is the gin context key holding the logged-in *domain.User.
const ContextKeyUser = "user"

// SessionResolver turns a session token into the user it belongs to.
// *app.AuthService implements it.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// Session loads the user named by the session cookie. Requests without a
// cookie, or with an invalid or expired one, continue anonymously.
func Session(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		user, err := resolver.CurrentUser(ctx, token)
		if err != nil {
			if !domain.IsUnauthenticated(err) {
				logging.FromContext(ctx).Warn("session lookup failed", "error", err)
			}

			c.Next()

			return
		}

		c.Set(ContextKeyUser, user)
		c.Request = c.Request.WithContext(logging.WithUserID(ctx, user.ID.String()))

		c.Next()
	}
}

// CurrentUser returns the logged-in user or nil.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(ContextKeyUser); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}

	return nil
}

// RequireUser redirects anonymous visitors of an HTML page to the login form,
// asking it to come back to the current URL afterwards.
func RequireUser(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, LoginURL(loginURL, c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// RequireUserJSON answers anonymous calls with 403 and the login URL the page
// script should send the visitor to. The visitor comes back to the referring
// page after logging in.
func RequireUserJSON(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Next()
			return
		}

		resp := dto.NewStatusError(dto.ReactionErrorAuthRequired)
		resp.LoginURL = LoginURL(loginURL, refererPath(c.Request))

		c.AbortWithStatusJSON(http.StatusForbidden, resp)
	}
}

// RequireStaff rejects everyone but active staff and superusers with the
// standard 403 envelope.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.CanAdminister() {
			dto.AbortWithErrorCode(c, dto.ErrorCodeForbidden, "staff session required")
			return
		}

		c.Next()
	}
}

// LoginURL appends next to the login page URL.
func LoginURL(loginURL, next string) string {
	next = SafeNext(next)

	return loginURL + "?" + url.Values{"next": {next}}.Encode()
}

// SafeNext returns next when it is a path on this site and "/" otherwise.
// Absolute and protocol-relative URLs are rejected so login cannot be used
// as an open redirect.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return next
}

func refererPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return "/"
	}

	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}

	return ref.RequestURI()
}
