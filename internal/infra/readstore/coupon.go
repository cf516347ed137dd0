package readstore

import (
	"context"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/infra/repository"
	"furnicraft/internal/pkg/pgconv"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
)

var couponSortColumns = map[string]string{
	"createdAt":  "created_at",
	"code":       "code",
	"name":       "name",
	"value":      "value",
	"validFrom":  "valid_from",
	"validUntil": "valid_until",
	"usedCount":  "used_count",
}

type CouponReadStore struct{}

func NewCouponReadStore() *CouponReadStore {
	return &CouponReadStore{}
}

func (s *CouponReadStore) List(ctx context.Context, db db.DBTX, f queries.CouponFilter, now time.Time) ([]*coupon.Coupon, int64, error) {
	var w where
	switch f.Status {
	case queries.CouponStatusActive:
		w.add("is_active AND valid_from <= ? AND valid_until >= ?", now, now)
	case queries.CouponStatusExpired:
		w.add("valid_until < ?", now)
	case queries.CouponStatusInactive:
		w.add("NOT is_active")
	case queries.CouponStatusUpcoming:
		w.add("valid_from > ?", now)
	}
	if f.Type != nil {
		w.add("type = ?", string(*f.Type))
	}
	if f.Search != "" {
		p := contains(f.Search)
		w.add("(code ILIKE ? OR name ILIKE ? OR description ILIKE ?)", p, p, p)
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM coupons`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count coupons", err)
	}

	limit, args := w.page(f.Page)
	rows, err := db.Query(ctx,
		`SELECT `+repository.CouponColumns+` FROM coupons`+w.String()+
			orderBy(couponSortColumns, f.SortBy, f.SortOrder, "id")+limit,
		args...,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	out := make([]*coupon.Coupon, 0, f.Page.Limit)
	for rows.Next() {
		c, err := repository.ScanCoupon(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan coupon", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate coupons", err)
	}
	return out, total, nil
}

func (s *CouponReadStore) FindActiveByCode(ctx context.Context, db db.DBTX, code string) (*coupon.Coupon, error) {
	row := db.QueryRow(ctx, `SELECT `+repository.CouponColumns+` FROM coupons WHERE code = $1 AND is_active`, code)
	c, err := repository.ScanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return c, nil
}

func (s *CouponReadStore) CustomerStanding(ctx context.Context, db db.DBTX, userID uuid.UUID) (*coupon.Customer, error) {
	cust := &coupon.Customer{ID: userID}
	err := db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1),
		       (SELECT count(*) FROM orders WHERE user_id = $1)`,
		userID,
	).Scan(&cust.Found, &cust.PriorOrders)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load customer standing", err)
	}
	return cust, nil
}
