package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"furnicraft/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that a handler attached to the context without
// writing a response itself. Handlers that already answered are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if len(c.Errors) > 0 {
			slog.Error("Unrendered handler error",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"errors", c.Errors.String())
			c.JSON(http.StatusInternalServerError, httperr.Internal())
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
		}
	}
}

// lastPublicResponse returns the envelope of the most recent public error.
func lastPublicResponse(errors []*gin.Error) (httperr.Response, bool) {
	for i := len(errors) - 1; i >= 0; i-- {
		if !errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a handler panic into the generic 500 envelope.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("Recovered from panic",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()))
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
		}()
		c.Next()
	}
}
