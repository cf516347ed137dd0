package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/pkg/cookie"
	"furnicraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	bearerPrefix = "Bearer "
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth rejects the request unless it carries a valid access token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c)
		if token == "" {
			denyUnauthorized(c, "Access token required")
			return
		}
		if err := m.identify(c, token); err != nil {
			slog.Warn("Rejected access token",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", err.Error())
			denyUnauthorized(c, "Invalid or expired token")
			return
		}
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		switch {
		case !ok:
			slog.Error("Role check without an authenticated caller", "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
		case !role.AtLeast(minRole):
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.Response{Message: "Admin access required"})
		default:
			c.Next()
		}
	}
}

// OptionalAuth identifies the caller when a valid token is present. Missing or
// invalid tokens leave the request anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := accessToken(c); token != "" {
			if err := m.identify(c, token); err != nil {
				slog.Debug("Ignoring invalid optional token", "error", err.Error())
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) identify(c *gin.Context, token string) error {
	userID, role, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return err
	}
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	return nil
}

// accessToken reads the access_token cookie first and falls back to a bearer
// Authorization header.
func accessToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func denyUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: msg})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, ok := c.Get(ctxUserRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
