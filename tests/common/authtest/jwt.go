//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the same secret the server under test uses.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.signAt(t, time.Now(), userID, role)
}

// CreateExpiredToken signs a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.signAt(t, time.Now().Add(-h.cfg.Duration-time.Hour), userID, role)
}

func (h *JWTHelper) signAt(t *testing.T, issuedAt time.Time, userID uuid.UUID, role user.Role) string {
	t.Helper()
	svc := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewMockClock(issuedAt))
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err, "sign test token")
	return token
}
