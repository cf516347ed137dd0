package repository

import (
	"context"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// CouponColumns is the column list ScanCoupon expects.
const CouponColumns = `
	id, code, name, description, type, value, minimum_amount, maximum_discount,
	usage_limit, used_count, is_active, valid_from, valid_until, applicable_to,
	categories, products, user_restrictions, specific_users, created_by, created_at, updated_at`

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx, `SELECT `+CouponColumns+` FROM coupons WHERE id = $1 FOR UPDATE`, id)
	c, err := ScanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return c, nil
}

func (r *CouponRepository) CodeExists(ctx context.Context, code coupon.Code, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM coupons WHERE code = $1 AND ($2::uuid IS NULL OR id <> $2))`,
		code.String(), excludeID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon code", err)
	}
	return exists, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	d := c.Details()
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (`+CouponColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		c.ID(), d.Code.String(), d.Name, d.Description, string(d.Type), d.Value, d.MinimumAmount,
		pgconv.DecimalPtrToNull(d.MaximumDiscount), pgconv.Int32PtrToPgtype(d.UsageLimit), c.UsedCount(),
		d.IsActive, d.ValidFrom, d.ValidUntil, string(d.ApplicableTo), d.Categories, d.Products,
		string(d.UserRestrictions), d.SpecificUsers, c.CreatedBy(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	d := c.Details()
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET
			code = $2, name = $3, description = $4, type = $5, value = $6, minimum_amount = $7,
			maximum_discount = $8, usage_limit = $9, is_active = $10, valid_from = $11, valid_until = $12,
			applicable_to = $13, categories = $14, products = $15, user_restrictions = $16,
			specific_users = $17, updated_at = $18
		WHERE id = $1`,
		c.ID(), d.Code.String(), d.Name, d.Description, string(d.Type), d.Value, d.MinimumAmount,
		pgconv.DecimalPtrToNull(d.MaximumDiscount), pgconv.Int32PtrToPgtype(d.UsageLimit),
		d.IsActive, d.ValidFrom, d.ValidUntil, string(d.ApplicableTo), d.Categories, d.Products,
		string(d.UserRestrictions), d.SpecificUsers, c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// ScanCoupon reads one row selected with the standard coupon column list.
func ScanCoupon(row rowScanner) (*coupon.Coupon, error) {
	var (
		id               uuid.UUID
		code             string
		d                coupon.Details
		typ              string
		maxDiscount      decimal.NullDecimal
		usageLimit       pgtype.Int4
		usedCount        int32
		applicableTo     string
		userRestrictions string
		createdBy        *uuid.UUID
		createdAt        time.Time
		updatedAt        time.Time
	)
	err := row.Scan(
		&id, &code, &d.Name, &d.Description, &typ, &d.Value, &d.MinimumAmount, &maxDiscount,
		&usageLimit, &usedCount, &d.IsActive, &d.ValidFrom, &d.ValidUntil, &applicableTo,
		&d.Categories, &d.Products, &userRestrictions, &d.SpecificUsers, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Code = coupon.Code(code)
	d.Type = coupon.Type(typ)
	d.MaximumDiscount = pgconv.DecimalPtrFromNull(maxDiscount)
	d.UsageLimit = pgconv.Int32PtrFromPgtype(usageLimit)
	d.ApplicableTo = coupon.Scope(applicableTo)
	d.UserRestrictions = coupon.Audience(userRestrictions)
	return coupon.Reconstruct(id, d, usedCount, createdBy, createdAt, updatedAt), nil
}
