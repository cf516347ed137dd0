//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/pkg/errs"
	"furnicraft/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, coupon.Code("SAVE20"), actual.Code())
		assert.Equal(t, int32(0), actual.UsedCount())
		assert.Equal(t, coupon.ScopeAll, actual.Details().ApplicableTo)
		assert.Equal(t, coupon.AudienceAll, actual.Details().UserRestrictions)
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("value validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "percentage at upper bound",
				mutate: func(b *builder.CouponBuilder) { b.WithType(coupon.TypePercentage, 100) },
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.CouponBuilder) { b.WithType(coupon.TypePercentage, 101) },
				errIs:  coupon.ErrPercentageRange,
			},
			{
				name:   "negative percentage",
				mutate: func(b *builder.CouponBuilder) { b.WithType(coupon.TypePercentage, -1) },
				errIs:  coupon.ErrPercentageRange,
			},
			{
				name:   "large fixed value",
				mutate: func(b *builder.CouponBuilder) { b.WithType(coupon.TypeFixed, 5000) },
			},
			{
				name:   "negative fixed value",
				mutate: func(b *builder.CouponBuilder) { b.WithType(coupon.TypeFixed, -5) },
				errIs:  coupon.ErrNegativeValue,
			},
			{
				name:   "negative free shipping value",
				mutate: func(b *builder.CouponBuilder) { b.WithType(coupon.TypeFreeShipping, -1) },
				errIs:  coupon.ErrNegativeValue,
			},
			{
				name:   "unknown type",
				mutate: func(b *builder.CouponBuilder) { b.Type = "bogo" },
				errIs:  coupon.ErrInvalidType,
			},
		})
	})

	t.Run("attribute validation", func(t *testing.T) {
		now := time.Now()
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.CouponBuilder) { b.WithName("   ") },
				errIs:  coupon.ErrEmptyName,
			},
			{
				name:   "malformed code",
				mutate: func(b *builder.CouponBuilder) { b.WithCode("no spaces") },
				errIs:  coupon.ErrInvalidCode,
			},
			{
				name:   "until equals from",
				mutate: func(b *builder.CouponBuilder) { b.WithWindow(now, now) },
				errIs:  coupon.ErrInvalidDateRange,
			},
			{
				name:   "until before from",
				mutate: func(b *builder.CouponBuilder) { b.WithWindow(now, now.Add(-time.Hour)) },
				errIs:  coupon.ErrInvalidDateRange,
			},
			{
				name:   "negative minimum",
				mutate: func(b *builder.CouponBuilder) { b.WithMinimumAmount(-1) },
				errIs:  coupon.ErrNegativeMinimum,
			},
			{
				name:   "zero usage limit",
				mutate: func(b *builder.CouponBuilder) { b.WithUsage(0, 0) },
				errIs:  coupon.ErrInvalidUsageLimit,
			},
			{
				name:   "unknown audience",
				mutate: func(b *builder.CouponBuilder) { b.UserRestrictions = "vip" },
				errIs:  coupon.ErrInvalidAudience,
			},
		})
	})

	t.Run("errors carry their kind", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithType(coupon.TypePercentage, 150).BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
		assert.Equal(t, "Percentage value must be between 0 and 100", errs.PublicMessage(err))
	})

	t.Run("categories are trimmed and deduplicated", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().ForCategories(" sofas ", "sofas", "", "tables").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []string{"sofas", "tables"}, actual.Details().Categories)
	})
}

func TestNewCode(t *testing.T) {
	code, err := coupon.NewCode("  save20 ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", code.String())

	_, err = coupon.NewCode("ab")
	require.ErrorIs(t, err, coupon.ErrInvalidCode)
}

func TestCouponRevise(t *testing.T) {
	t.Run("partial update keeps stored fields", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildStored()
		before := c.Details()
		name := "Renamed"

		err := c.Revise(coupon.Revision{Name: &name}, time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Renamed", c.Name())
		assert.Equal(t, before.Code, c.Code())
		assert.True(t, before.Value.Equal(c.Value()))
	})

	t.Run("date order checked against stored value", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildStored()
		until := c.Details().ValidFrom.Add(-time.Minute)

		err := c.Revise(coupon.Revision{ValidUntil: &until}, time.Now())
		require.ErrorIs(t, err, coupon.ErrInvalidDateRange)
	})

	t.Run("value rechecked against new type", func(t *testing.T) {
		c := builder.NewCouponBuilder().AsFlat(250).BuildStored()
		pct := coupon.TypePercentage

		err := c.Revise(coupon.Revision{Type: &pct}, time.Now())
		require.ErrorIs(t, err, coupon.ErrPercentageRange)
		assert.Equal(t, coupon.TypeFixed, c.Type(), "failed revision must not change the coupon")
	})

	t.Run("usage limit cannot drop below redemptions", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithUsage(4, 10).BuildStored()
		limit := int32(3)

		err := c.Revise(coupon.Revision{UsageLimit: &limit}, time.Now())
		require.ErrorIs(t, err, coupon.ErrUsageLimitBelowUsed)
	})

	t.Run("zero clears caps", func(t *testing.T) {
		c := builder.NewCouponBuilder().WithUsage(1, 10).WithMaximumDiscount(50).BuildStored()
		zeroLimit := int32(0)
		zeroCap := decimal.Zero

		err := c.Revise(coupon.Revision{UsageLimit: &zeroLimit, MaximumDiscount: &zeroCap}, time.Now())
		require.NoError(t, err)
		assert.Nil(t, c.Details().UsageLimit)
		assert.Nil(t, c.Details().MaximumDiscount)
		assert.Nil(t, c.RemainingUses())
	})
}

func TestCouponStatus(t *testing.T) {
	now := time.Now()

	t.Run("deletable only when unused", func(t *testing.T) {
		require.NoError(t, builder.NewCouponBuilder().BuildStored().EnsureDeletable())

		err := builder.NewCouponBuilder().WithUsedCount(1).BuildStored().EnsureDeletable()
		require.ErrorIs(t, err, coupon.ErrAlreadyUsed)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
	})

	t.Run("window flags", func(t *testing.T) {
		expired := builder.NewCouponBuilder().WithWindow(now.Add(-48*time.Hour), now.Add(-time.Hour)).BuildStored()
		upcoming := builder.NewCouponBuilder().WithWindow(now.Add(time.Hour), now.Add(48*time.Hour)).BuildStored()
		live := builder.NewCouponBuilder().BuildStored()
		switchedOff := builder.NewCouponBuilder().Inactive().BuildStored()

		assert.True(t, expired.IsExpired(now))
		assert.False(t, expired.IsLive(now))
		assert.True(t, upcoming.IsUpcoming(now))
		assert.False(t, upcoming.IsLive(now))
		assert.True(t, live.IsLive(now))
		assert.False(t, switchedOff.IsLive(now))
	})

	t.Run("usage figures", func(t *testing.T) {
		limited := builder.NewCouponBuilder().WithUsage(1, 3).BuildStored()
		assert.Equal(t, 33, limited.UsagePercentage())
		require.NotNil(t, limited.RemainingUses())
		assert.Equal(t, int32(2), *limited.RemainingUses())

		unlimited := builder.NewCouponBuilder().WithUsedCount(7).BuildStored()
		assert.Equal(t, 0, unlimited.UsagePercentage())
		assert.Nil(t, unlimited.RemainingUses())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
