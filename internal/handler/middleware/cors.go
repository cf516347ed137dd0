package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"furnicraft/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers the admin UI reads: export filenames and request ids for support tickets.
var alwaysExposed = []string{"Content-Disposition", requestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range alwaysExposed {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, requestIDHeader) {
		allowHeaders = append(allowHeaders, requestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		// cors.New panics without origins; tests and same-origin deployments have none.
		slog.Info("CORS disabled: no allowed origins configured")
		return func(c *gin.Context) {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
		}
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
