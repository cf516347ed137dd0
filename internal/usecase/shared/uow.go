package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/domain/order"
	"furnicraft/internal/domain/review"
	"furnicraft/internal/domain/user"
	"furnicraft/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Coupons() CouponRepository
	Orders() OrderRepository
	Users() UserRepository
	Outbox() OutboxRepository
	Products() ProductRepository
	Reviews() ReviewRepository
	DB() db.DBTX
}

type CouponRepository interface {
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	CodeExists(ctx context.Context, code coupon.Code, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, c *coupon.Coupon) error
	Update(ctx context.Context, c *coupon.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order) error
	AppendTimeline(ctx context.Context, orderID uuid.UUID, entry order.TimelineEntry) error
}

type UserRepository interface {
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	EmailTaken(ctx context.Context, email user.Email, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ProductRepository interface {
	// Lock holds the product row for the rest of the transaction so rating
	// refreshes for the same product run one at a time.
	Lock(ctx context.Context, id uuid.UUID) error
	// RefreshRating recomputes rating and review_count from approved reviews.
	RefreshRating(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Exists(ctx context.Context, productID, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, r *review.Review) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, payload any, at time.Time) error
	// ClaimPending locks up to limit pending events, skipping rows held by other relays.
	ClaimPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
	// MarkAttemptFailed records the failure and gives up once maxAttempts is reached.
	MarkAttemptFailed(ctx context.Context, id uuid.UUID, reason string, maxAttempts int) error
}
