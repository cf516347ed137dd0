//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"furnicraft/internal/handler/middleware"
	"furnicraft/internal/pkg/config"
	testhttp "furnicraft/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("exposes export and request id headers to allowed origins", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins:  []string{"http://admin.local"},
			AllowMethods:  []string{"GET"},
			AllowHeaders:  []string{"Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		}))
		r.GET("/orders/export", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := testhttp.Serve(t, r, http.MethodGet, "/orders/export", nil,
			testhttp.WithHeader("Origin", "http://admin.local"))

		testhttp.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin": "http://admin.local",
		})
		exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "content-length")
		assert.Contains(t, exposed, "content-disposition")
		assert.Contains(t, exposed, "x-request-id")
	})

	t.Run("without origins it only answers preflights", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{}))
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/health", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
