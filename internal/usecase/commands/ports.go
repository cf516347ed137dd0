package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"time"

	"furnicraft/internal/domain/user"

	"github.com/google/uuid"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type StatusUpdateRecorder interface {
	RecordOrderStatusUpdate(status string)
}
