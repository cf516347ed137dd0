//go:build unit || e2e

package builder

import (
	"time"

	"furnicraft/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID               uuid.UUID
	Code             string
	Name             string
	Description      string
	Type             coupon.Type
	Value            decimal.Decimal
	MinimumAmount    decimal.Decimal
	MaximumDiscount  *decimal.Decimal
	UsageLimit       *int32
	UsedCount        int32
	IsActive         bool
	ValidFrom        time.Time
	ValidUntil       time.Time
	ApplicableTo     coupon.Scope
	Categories       []string
	Products         []uuid.UUID
	UserRestrictions coupon.Audience
	SpecificUsers    []uuid.UUID
	CreatedBy        *uuid.UUID
	CreatedAt        time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:               uuid.New(),
		Code:             "SAVE20",
		Name:             "Twenty percent off",
		Description:      "Spring sale",
		Type:             coupon.TypePercentage,
		Value:            decimal.NewFromInt(20),
		MinimumAmount:    decimal.Zero,
		IsActive:         true,
		ValidFrom:        now.Add(-24 * time.Hour),
		ValidUntil:       now.Add(30 * 24 * time.Hour),
		ApplicableTo:     coupon.ScopeAll,
		UserRestrictions: coupon.AudienceAll,
		CreatedAt:        now.Add(-48 * time.Hour),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Details() coupon.Details {
	return coupon.Details{
		Code:             coupon.Code(b.Code),
		Name:             b.Name,
		Description:      b.Description,
		Type:             b.Type,
		Value:            b.Value,
		MinimumAmount:    b.MinimumAmount,
		MaximumDiscount:  b.MaximumDiscount,
		UsageLimit:       b.UsageLimit,
		IsActive:         b.IsActive,
		ValidFrom:        b.ValidFrom,
		ValidUntil:       b.ValidUntil,
		ApplicableTo:     b.ApplicableTo,
		Categories:       b.Categories,
		Products:         b.Products,
		UserRestrictions: b.UserRestrictions,
		SpecificUsers:    b.SpecificUsers,
	}
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.New(b.Details(), b.CreatedBy, b.CreatedAt)
}

// BuildStored skips validation, like a row loaded from the database.
func (b *CouponBuilder) BuildStored() *coupon.Coupon {
	return coupon.Reconstruct(b.ID, b.Details(), b.UsedCount, b.CreatedBy, b.CreatedAt, b.CreatedAt)
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithName(name string) *CouponBuilder {
	b.Name = name
	return b
}

func (b *CouponBuilder) WithType(t coupon.Type, value int64) *CouponBuilder {
	b.Type = t
	b.Value = decimal.NewFromInt(value)
	return b
}

func (b *CouponBuilder) WithValue(value decimal.Decimal) *CouponBuilder {
	b.Value = value
	return b
}

func (b *CouponBuilder) WithMinimumAmount(amount int64) *CouponBuilder {
	b.MinimumAmount = decimal.NewFromInt(amount)
	return b
}

func (b *CouponBuilder) WithMaximumDiscount(amount int64) *CouponBuilder {
	d := decimal.NewFromInt(amount)
	b.MaximumDiscount = &d
	return b
}

func (b *CouponBuilder) WithUsage(used, limit int32) *CouponBuilder {
	b.UsedCount = used
	b.UsageLimit = &limit
	return b
}

func (b *CouponBuilder) WithUsedCount(used int32) *CouponBuilder {
	b.UsedCount = used
	return b
}

func (b *CouponBuilder) WithWindow(from, until time.Time) *CouponBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.IsActive = false
	return b
}

func (b *CouponBuilder) ForProducts(ids ...uuid.UUID) *CouponBuilder {
	b.ApplicableTo = coupon.ScopeProduct
	b.Products = ids
	return b
}

func (b *CouponBuilder) ForCategories(categories ...string) *CouponBuilder {
	b.ApplicableTo = coupon.ScopeCategory
	b.Categories = categories
	return b
}

func (b *CouponBuilder) ForAudience(a coupon.Audience, users ...uuid.UUID) *CouponBuilder {
	b.UserRestrictions = a
	b.SpecificUsers = users
	return b
}

func (b *CouponBuilder) WithCreatedBy(id uuid.UUID) *CouponBuilder {
	b.CreatedBy = &id
	return b
}

func (b *CouponBuilder) AsFlat(value int64) *CouponBuilder {
	b.Code = "FLAT10"
	b.Name = "Flat discount"
	return b.WithType(coupon.TypeFixed, value)
}
