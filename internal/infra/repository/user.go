package repository

import (
	"context"
	"time"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserColumns is the column list ScanUser expects.
const UserColumns = `
	id, name, email, password_hash, profile_pic, role, phone, is_active, is_blocked,
	last_login, addresses, preferences, total_orders, total_spent, last_order_date,
	created_at, updated_at`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+UserColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	u, err := ScanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+UserColumns+` FROM users WHERE lower(email) = $1`, email.Value())
	u, err := ScanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email user.Email, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = $1 AND id <> $2)`,
		email.Value(), excludeID,
	).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return taken, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	stats := u.Stats()
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			name = $2, email = $3, phone = $4, is_active = $5, is_blocked = $6, last_login = $7,
			addresses = $8, preferences = $9, total_orders = $10, total_spent = $11,
			last_order_date = $12, updated_at = $13
		WHERE id = $1`,
		u.ID(), u.Name(), u.Email().Value(), u.Phone(), u.IsActive(), u.IsBlocked(),
		pgconv.TimePtrToPgtype(u.LastLogin()), u.Addresses(), u.Preferences(),
		stats.TotalOrders, stats.TotalSpent, pgconv.TimePtrToPgtype(stats.LastOrderDate), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

// ScanUser reads one row selected with UserColumns.
func ScanUser(row rowScanner) (*user.User, error) {
	var (
		s         user.Snapshot
		email     string
		role      string
		lastLogin pgtype.Timestamptz
		lastOrder pgtype.Timestamptz
	)
	err := row.Scan(
		&s.ID, &s.Name, &email, &s.PasswordHash, &s.ProfilePic, &role, &s.Phone, &s.IsActive, &s.IsBlocked,
		&lastLogin, &s.Addresses, &s.Preferences, &s.Stats.TotalOrders, &s.Stats.TotalSpent, &lastOrder,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Email, err = user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	s.Role = user.Role(role)
	s.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	s.Stats.LastOrderDate = pgconv.TimePtrFromPgtype(lastOrder)
	if s.Addresses == nil {
		s.Addresses = []user.Address{}
	}
	if s.Preferences == nil {
		s.Preferences = user.DefaultPreferences()
	}
	return user.Reconstruct(s), nil
}
