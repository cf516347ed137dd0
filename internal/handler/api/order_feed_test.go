//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/handler/api"
	"furnicraft/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// greetingFeed tells each subscriber who it is and hangs up.
type greetingFeed struct{}

func (greetingFeed) Serve(conn *websocket.Conn, userID uuid.UUID) {
	defer conn.Close()
	_ = conn.WriteJSON(map[string]string{"subscriber": userID.String()})
}

func TestOrderFeedHandler_Subscribe(t *testing.T) {
	adminID := uuid.New()
	h := api.NewOrderFeedHandler(greetingFeed{}, config.CORSConfig{AllowOrigins: []string{"http://admin.local"}})

	r := newRouter()
	r.GET("/ws/orders", asActor(adminID, user.RoleAdmin), h.Subscribe)
	r.GET("/anonymous/ws/orders", h.Subscribe)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	tests := []struct {
		name       string
		path       string
		origin     string
		wantStatus int
	}{
		{name: "non-browser client", path: "/ws/orders", wantStatus: http.StatusSwitchingProtocols},
		{name: "allowed origin", path: "/ws/orders", origin: "http://admin.local", wantStatus: http.StatusSwitchingProtocols},
		{name: "foreign origin", path: "/ws/orders", origin: "http://evil.example", wantStatus: http.StatusForbidden},
		{name: "no caller on the context", path: "/anonymous/ws/orders", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}

			conn, resp, err := websocket.DefaultDialer.Dial(wsURL+tt.path, header)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != http.StatusSwitchingProtocols {
				require.ErrorIs(t, err, websocket.ErrBadHandshake)
				return
			}
			require.NoError(t, err)
			defer conn.Close()

			var hello map[string]string
			require.NoError(t, conn.ReadJSON(&hello))
			assert.Equal(t, adminID.String(), hello["subscriber"])
		})
	}
}
