//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// completedLine returns the decoded "Request completed" record.
func completedLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == "Request completed" {
			return rec
		}
	}
	t.Fatalf("no completion record in %q", buf.String())
	return nil
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()

	tests := []struct {
		name        string
		incoming    string
		path        string
		wantLevel   string
		wantEchoed  bool
		wantCaller  bool
		wantQueryIn bool
	}{
		{name: "reuses a well-formed upstream id", incoming: "edge-123", path: "/orders?status=shipped", wantLevel: "INFO", wantEchoed: true, wantCaller: true, wantQueryIn: true},
		{name: "replaces an id with whitespace", incoming: "bad id", path: "/orders", wantLevel: "INFO", wantCaller: true},
		{name: "warns on client errors", path: "/missing", wantLevel: "WARN"},
		{name: "errors on server failures", path: "/broken", wantLevel: "ERROR", wantCaller: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := gin.New()
			r.Use(middleware.RequestLogger(newCapturingLogger(&buf)))
			asAdmin := func(c *gin.Context) {
				c.Set("user_id", adminID)
				c.Set("user_role", user.RoleAdmin)
				c.Next()
			}
			r.GET("/orders", asAdmin, func(c *gin.Context) {
				assert.NotEmpty(t, middleware.GetRequestID(c))
				c.Status(http.StatusOK)
			})
			r.GET("/broken", asAdmin, func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			got := rec.Header().Get("X-Request-ID")
			require.NotEmpty(t, got)
			if tt.wantEchoed {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}

			line := completedLine(t, &buf)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, got, line["request_id"])
			if tt.wantCaller {
				assert.Equal(t, adminID.String(), line["user_id"])
				assert.Equal(t, "admin", line["role"])
			} else {
				assert.NotContains(t, line, "user_id")
			}
			if tt.wantQueryIn {
				assert.Equal(t, "status=shipped", line["query"])
			}
		})
	}
}
