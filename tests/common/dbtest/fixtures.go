//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"furnicraft/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain text behind every fixture user's password hash.
const TestPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := password.HashWithCost(TestPassword, bcrypt.MinCost)
		if err == nil {
			testPasswordHash = hash
		}
	})
	require.NotEmpty(t, testPasswordHash, "hashing the fixture password failed")
	return testPasswordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	name := strings.Split(email, "@")[0]

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING`,
		userID, name, email, passwordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func SetUserStanding(t *testing.T, db DBLike, userID uuid.UUID, active, blocked bool) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE users SET is_active = $2, is_blocked = $3 WHERE id = $1", userID, active, blocked)
	require.NoError(t, err)
}

func CreateTestProduct(t *testing.T, db DBLike, name, category string, price int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (product_name, category, price, selling_price, stock_quantity)
		VALUES ($1, $2, $3, $3, 10)
		RETURNING id`,
		name, category, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// OrderFixture describes a single-line order; zero values fall back to sensible defaults.
type OrderFixture struct {
	Number        string
	UserID        uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	UnitPrice     int64
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
}

func CreateTestOrder(t *testing.T, db DBLike, f OrderFixture) uuid.UUID {
	t.Helper()

	if f.Quantity == 0 {
		f.Quantity = 1
	}
	if f.Status == "" {
		f.Status = "pending"
	}
	if f.PaymentStatus == "" {
		f.PaymentStatus = "pending"
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	total := f.UnitPrice * int64(f.Quantity)

	ctx := context.Background()
	var orderID uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO orders (order_number, user_id, status, payment_status, payment_method,
			shipping_address, billing_address, subtotal, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'credit_card',
			'{"fullName": "Test Customer", "city": "Osaka"}', '{"fullName": "Test Customer", "city": "Osaka"}',
			$5, $5, $6, $6)
		RETURNING id`,
		f.Number, f.UserID, f.Status, f.PaymentStatus, total, f.CreatedAt).Scan(&orderID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price, total_price)
		SELECT $1, p.id, p.product_name, $3, $4, $5 FROM products p WHERE p.id = $2`,
		orderID, f.ProductID, f.Quantity, f.UnitPrice, total)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO order_timeline (order_id, status, note, created_at)
		VALUES ($1, $2, 'Order placed', $3)`,
		orderID, f.Status, f.CreatedAt)
	require.NoError(t, err)

	return orderID
}

// CouponFixture covers the columns the tests vary; the rest keep schema defaults.
type CouponFixture struct {
	Code          string
	Type          string
	Value         int64
	MinimumAmount int64
	UsageLimit    *int
	UsedCount     int
	ValidFrom     time.Time
	ValidUntil    time.Time
	Inactive      bool
}

func CreateTestCoupon(t *testing.T, db DBLike, f CouponFixture) uuid.UUID {
	t.Helper()

	if f.Type == "" {
		f.Type = "percentage"
	}
	if f.ValidFrom.IsZero() {
		f.ValidFrom = time.Now().Add(-24 * time.Hour)
	}
	if f.ValidUntil.IsZero() {
		f.ValidUntil = time.Now().Add(30 * 24 * time.Hour)
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO coupons (code, name, type, value, minimum_amount, usage_limit, used_count,
			is_active, valid_from, valid_until)
		VALUES ($1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		f.Code, f.Type, f.Value, f.MinimumAmount, f.UsageLimit, f.UsedCount,
		!f.Inactive, f.ValidFrom, f.ValidUntil).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the catalog rows every suite can rely on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (product_name, brand_name, category, room_type, price, selling_price, stock_quantity)
		VALUES
		    ('Oak Dining Table', 'FurniCraft', 'tables', 'dining', 42000, 39800, 5),
		    ('Linen Sofa', 'FurniCraft', 'sofas', 'living', 89000, 84000, 3)
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
