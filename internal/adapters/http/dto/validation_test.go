package dto

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Singleton(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestValidate_CreateQuoteRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateQuoteRequest
		wantFields map[string]string
	}{
		{
			name: "valid",
			req:  CreateQuoteRequest{Text: "Hello", SourceID: "0b6f1a52-6a5f-4a53-9a55-2f1f6f3b6a9e"},
		},
		{
			name: "blank text and bad source id",
			req:  CreateQuoteRequest{Text: "   ", SourceID: "nope"},
			wantFields: map[string]string{
				"text":      "must not be empty",
				"source_id": "must be a valid UUID",
			},
		},
		{
			name: "weight out of range",
			req:  CreateQuoteRequest{Text: "Hello", SourceID: "0b6f1a52-6a5f-4a53-9a55-2f1f6f3b6a9e", Weight: 101},
			wantFields: map[string]string{
				"weight": "must be between 1 and 100",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantFields, ValidationErrors(err))
		})
	}
}

func TestValidate_UpdateQuoteRequest(t *testing.T) {
	negative := int64(-1)

	err := Validate(&UpdateQuoteRequest{Likes: &negative})
	require.Error(t, err)
	assert.Equal(t, "must be greater than or equal to 0", ValidationErrors(err)["likes"])

	require.NoError(t, Validate(&UpdateQuoteRequest{}))
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"name":"book"}`},
		{name: "malformed", body: `{name}`, wantErr: ErrBinding},
		{name: "blank", body: `{"name":"  "}`, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req SourceTypeRequest

			err := BindAndValidate(c, &req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "book", req.Name)
		})
	}
}

func TestBindFormAndValidate(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"secret"}, "next": {"/top/"}}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got LoginForm
	require.NoError(t, BindFormAndValidate(c, &got))
	assert.Equal(t, LoginForm{Username: "alice", Password: "secret", Next: "/top/"}, got)

	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("username=alice"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var missing LoginForm
	err := BindFormAndValidate(c, &missing)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "this field is required", ValidationErrors(err)["password"])
}

func TestBindQueryAndValidate(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=500&active=false", nil)

	var req QuoteListRequest
	err := BindQueryAndValidate(c, &req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, ValidationErrors(err), "limit")

	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=5&active=false", nil)

	req = QuoteListRequest{}
	require.NoError(t, BindQueryAndValidate(c, &req))
	assert.Equal(t, 5, req.Size())
	require.NotNil(t, req.Active)
	assert.False(t, *req.Active)
}

func TestValidate_WeightZeroMeansDefault(t *testing.T) {
	req := CreateQuoteRequest{Text: "Hello", SourceID: "0b6f1a52-6a5f-4a53-9a55-2f1f6f3b6a9e"}
	require.NoError(t, Validate(&req))

	negative := -3
	err := Validate(&UpdateQuoteRequest{Weight: &negative})
	require.Error(t, err)
	assert.Equal(t, "must be between 1 and 100", ValidationErrors(err)["weight"])
}

func TestMinMaxMessage(t *testing.T) {
	type form struct {
		Name string `json:"name" validate:"min=3"`
		Tags []int  `json:"tags" validate:"max=1"`
	}

	err := Validate(&form{Name: "ab", Tags: []int{1, 2}})
	require.Error(t, err)

	fields := ValidationErrors(err)
	assert.Equal(t, "must be at least 3 characters", fields["name"])
	assert.Equal(t, "must be at most 1", fields["tags"])
}
