package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactions_LoggedInUserLikesAndDislikes(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.user(t, "reader", false)
	src := env.source(t, "Dune", nil)
	q := env.quote(t, "Fear is the mind-killer.", src.ID)

	w := env.do(t, http.MethodPost, "/like/"+q.ID.String()+"/", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","new_likes":1}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/like/"+q.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","new_likes":2}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/dislike/"+q.ID.String()+"/", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","new_dislikes":1}`, w.Body.String())

	stored, err := env.store.Quotes().GetActive(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Likes)
	assert.Equal(t, int64(1), stored.Dislikes)
}

func TestReactions_AnonymousGetsLoginURL(t *testing.T) {
	env := newTestEnv(t)
	src := env.source(t, "Dune", nil)
	q := env.quote(t, "Fear is the mind-killer.", src.ID)

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{
			name: "no referer returns home",
			want: `{"status":"error","error":"auth_required","login_url":"/accounts/login/?next=%2F"}`,
		},
		{
			name:    "same-site referer is kept",
			referer: "http://example.com/top/",
			want:    `{"status":"error","error":"auth_required","login_url":"/accounts/login/?next=%2Ftop%2F"}`,
		},
		{
			name:    "foreign referer is ignored",
			referer: "https://evil.test/phish",
			want:    `{"status":"error","error":"auth_required","login_url":"/accounts/login/?next=%2F"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.referer != "" {
				headers = []string{"Referer", tt.referer}
			}

			w := env.do(t, http.MethodPost, "/like/"+q.ID.String()+"/", nil, nil, headers...)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}

	stored, err := env.store.Quotes().GetActive(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Likes)
}

func TestReactions_UnknownQuote(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.user(t, "reader", false)
	src := env.source(t, "Dune", nil)
	deleted := env.quote(t, "Gone", src.ID)

	require.NoError(t, env.store.Quotes().SetActive(context.Background(), deleted.ID, false))

	for _, target := range []string{
		"/like/" + uuid.NewString() + "/",
		"/dislike/not-a-uuid/",
		"/like/" + deleted.ID.String() + "/",
	} {
		w := env.do(t, http.MethodPost, target, nil, cookie)

		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.JSONEq(t, `{"status":"error","error":"not_found"}`, w.Body.String(), target)
	}
}

func TestReactions_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.user(t, "reader", false)
	src := env.source(t, "Dune", nil)
	q := env.quote(t, "Fear is the mind-killer.", src.ID)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := env.do(t, method, "/like/"+q.ID.String()+"/", nil, cookie)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
		assert.JSONEq(t, `{"status":"error","error":"method_not_allowed"}`, w.Body.String())
	}
}
