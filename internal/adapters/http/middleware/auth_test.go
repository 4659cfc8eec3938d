package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

type resolverFunc func(ctx context.Context, token string) (*domain.User, error)

func (f resolverFunc) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return f(ctx, token)
}

func fixedResolver(users map[string]*domain.User) SessionResolver {
	return resolverFunc(func(_ context.Context, token string) (*domain.User, error) {
		if token == "broken" {
			return nil, errors.New("database is down")
		}

		if u, ok := users[token]; ok {
			return u, nil
		}

		return nil, domain.ErrUnauthenticated
	})
}

func TestSession(t *testing.T) {
	t.Parallel()

	reader := domain.NewUser("reader", "hash", false, false)
	resolver := fixedResolver(map[string]*domain.User{"good": reader})

	tests := []struct {
		name     string
		cookie   string
		wantUser *domain.User
	}{
		{name: "no cookie", cookie: ""},
		{name: "valid token", cookie: "good", wantUser: reader},
		{name: "unknown token continues anonymously", cookie: "expired"},
		{name: "lookup failure continues anonymously", cookie: "broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *domain.User

			router := gin.New()
			router.Use(Session(resolver, "session"))
			router.GET("/", func(c *gin.Context) {
				got = CurrentUser(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}

func withUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(ContextKeyUser, user)
		}

		c.Next()
	}
}

func TestRequireUser_RedirectsToLogin(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.GET("/add-quote/", withUser(nil), RequireUser("/accounts/login/"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/add-quote/?x=1", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fadd-quote%2F%3Fx%3D1", w.Header().Get("Location"))
}

func TestRequireUserJSON(t *testing.T) {
	t.Parallel()

	reader := domain.NewUser("reader", "hash", false, false)

	tests := []struct {
		name       string
		user       *domain.User
		referer    string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "logged in passes",
			user:       reader,
			wantStatus: http.StatusOK,
		},
		{
			name:       "anonymous without referer",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"status":"error","error":"auth_required","login_url":"/accounts/login/?next=%2F"}`,
		},
		{
			name:       "anonymous from a page of the site",
			referer:    "http://example.com/top/?page=2",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"status":"error","error":"auth_required","login_url":"/accounts/login/?next=%2Ftop%2F%3Fpage%3D2"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.POST("/like/:id/", withUser(tt.user), RequireUserJSON("/accounts/login/"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/like/1/", nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequireStaff(t *testing.T) {
	t.Parallel()

	inactive := domain.NewUser("gone", "hash", true, false)
	inactive.IsActive = false

	tests := []struct {
		name       string
		user       *domain.User
		wantStatus int
	}{
		{name: "anonymous", wantStatus: http.StatusForbidden},
		{name: "regular user", user: domain.NewUser("reader", "hash", false, false), wantStatus: http.StatusForbidden},
		{name: "inactive staff", user: inactive, wantStatus: http.StatusForbidden},
		{name: "staff", user: domain.NewUser("editor", "hash", true, false), wantStatus: http.StatusOK},
		{name: "superuser", user: domain.NewUser("root", "hash", false, true), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.GET("/admin/api/quotes", withUser(tt.user), RequireStaff(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/api/quotes", nil))

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), `"code":"FORBIDDEN"`)
			}
		})
	}
}

func TestSafeNext(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                    "/",
		"/":                   "/",
		"/top/":               "/top/",
		"/add-quote/?a=b":     "/add-quote/?a=b",
		"top/":                "/",
		"//evil.test/":        "/",
		`/\evil.test`:         "/",
		"https://evil.test/":  "/",
		"javascript:alert(1)": "/",
	}

	for next, want := range tests {
		assert.Equal(t, want, SafeNext(next), next)
	}
}

func TestLoginURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/accounts/login/?next=%2Ftop%2F", LoginURL("/accounts/login/", "/top/"))
	assert.Equal(t, "/accounts/login/?next=%2F", LoginURL("/accounts/login/", "https://evil.test/"))
}
