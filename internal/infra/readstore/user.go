package readstore

import (
	"context"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/infra/repository"
	"furnicraft/internal/pkg/pgconv"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
)

var userSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
	"lastLogin": "last_login",
}

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

func (r *UserReadStore) FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*user.User, error) {
	row := db.QueryRow(ctx, `SELECT `+repository.UserColumns+` FROM users WHERE id = $1`, id)
	u, err := repository.ScanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserReadStore) List(ctx context.Context, db db.DBTX, f queries.UserFilter) ([]*user.User, int64, error) {
	var w where
	if f.Search != "" {
		p := contains(f.Search)
		w.add("(name ILIKE ? OR email ILIKE ? OR phone ILIKE ?)", p, p, p)
	}
	switch f.Status {
	case queries.UserStatusActive:
		w.add("is_active AND NOT is_blocked")
	case queries.UserStatusBlocked:
		w.add("is_blocked")
	case queries.UserStatusInactive:
		w.add("NOT is_active")
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM users`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count users", err)
	}

	order := orderBy(userSortColumns, f.SortBy, f.SortOrder, "id")
	if f.SortBy == "lastLogin" {
		// never-logged-in users sort last either way
		order = " ORDER BY last_login " + sortDir(f.SortOrder) + " NULLS LAST, id"
	}
	limit, args := w.page(f.Page)
	rows, err := db.Query(ctx, `SELECT `+repository.UserColumns+` FROM users`+w.String()+order+limit, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	out := make([]*user.User, 0, f.Page.Limit)
	for rows.Next() {
		u, err := repository.ScanUser(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate users", err)
	}
	return out, total, nil
}

func (r *UserReadStore) RecentOrders(ctx context.Context, db db.DBTX, userID uuid.UUID, limit int) ([]queries.RecentOrder, error) {
	rows, err := db.Query(ctx, `
		SELECT id, order_number, status, total, created_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load recent orders", err)
	}
	defer rows.Close()

	out := []queries.RecentOrder{}
	for rows.Next() {
		var o queries.RecentOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent order", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recent orders", err)
	}
	return out, nil
}
