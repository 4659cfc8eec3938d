package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quotebook/internal/mocks"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func TestLiveHandler_Reactions(t *testing.T) {
	feed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		enabled    bool
		wantStatus int
	}{
		{name: "flag on serves the feed", enabled: true, wantStatus: http.StatusTeapot},
		{name: "flag off hides the feed", enabled: false, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := mocks.NewMockFeatureFlags(t)
			flags.EXPECT().IsEnabled(mock.Anything, ports.FlagLiveReactions, true).Return(tt.enabled)

			router := gin.New()
			NewLiveHandler(feed, flags).RegisterLiveRoutes(&router.RouterGroup)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/reactions", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			if !tt.enabled {
				assert.JSONEq(t, `{"status":"error","error":"not_found"}`, w.Body.String())
			}
		})
	}
}
