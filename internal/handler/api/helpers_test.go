//go:build unit

package api_test

import (
	"time"

	"furnicraft/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// asActor stands in for RequireAuth by putting the caller on the context.
func asActor(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_role", role)
		c.Next()
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
