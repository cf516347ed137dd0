package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"furnicraft/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ctxRequestIDKey = "request_id"
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// NewLogger builds the process logger from LOG_* settings and installs it as
// the slog default. Release mode logs JSON, everything else logs text.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RequestLogger logs one line when a request starts and one when it ends.
// A well-formed X-Request-ID from upstream is reused and echoed back.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := incomingRequestID(c)
		if requestID == "" {
			requestID = newRequestID(startTime)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			logAttrs = append(logAttrs, slog.String("query", q))
		}
		logger.LogAttrs(context.Background(), slog.LevelDebug, "Request started", logAttrs...)

		c.Next()

		statusCode := c.Writer.Status()
		attrs := make([]slog.Attr, len(logAttrs), len(logAttrs)+6)
		copy(attrs, logAttrs)
		// Auth runs per route group, so the caller is only known after c.Next.
		if userID, ok := GetUserID(c); ok {
			attrs = append(attrs, slog.String("user_id", userID.String()))
		}
		if role, ok := GetUserRole(c); ok {
			attrs = append(attrs, slog.String("role", role.String()))
		}
		attrs = append(attrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(context.Background(), level, "Request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func incomingRequestID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" || len(id) > maxRequestIDLen || strings.ContainsAny(id, " \t\r\n") {
		return ""
	}
	return id
}

func newRequestID(now time.Time) string {
	timestamp := now.UTC().Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, now.UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
