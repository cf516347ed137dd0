//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/queries"
	"furnicraft/tests/common/builder"
	queriesmock "furnicraft/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func liveCoupon() *builder.CouponBuilder {
	return builder.NewCouponBuilder().WithWindow(fixedNow.Add(-24*time.Hour), fixedNow.Add(24*time.Hour))
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCouponQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	recorder := queriesmock.NewMockValidationRecorder(ctrl)
	q := queries.NewCouponQueries(newReadUoW(ctrl), store, clock.NewMockClock(fixedNow), recorder)

	f := queries.CouponFilter{Status: queries.CouponStatusAll, Page: queries.NewPageRequest(2, 10)}
	expired := builder.NewCouponBuilder().WithCode("OLD10").
		WithWindow(fixedNow.Add(-48*time.Hour), fixedNow.Add(-24*time.Hour)).BuildStored()
	live := liveCoupon().WithUsage(5, 20).BuildStored()
	store.EXPECT().List(gomock.Any(), gomock.Any(), f, fixedNow).Return([]*coupon.Coupon{live, expired}, int64(12), nil)

	page, err := q.List(context.Background(), f)

	require.NoError(t, err)
	require.Len(t, page.Coupons, 2)
	assert.True(t, page.Coupons[0].IsCurrentlyActive)
	assert.Equal(t, 25, page.Coupons[0].UsagePercentage)
	require.NotNil(t, page.Coupons[0].RemainingUses)
	assert.Equal(t, int32(15), *page.Coupons[0].RemainingUses)
	assert.True(t, page.Coupons[1].IsExpired)
	assert.Equal(t, queries.Pagination{CurrentPage: 2, TotalPages: 2, Total: 12, HasNext: false, HasPrev: true}, page.Pagination)
}

func TestCouponQueries_Validate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	testCases := []struct {
		name          string
		input         queries.ValidateCouponInput
		setupMock     func(store *queriesmock.MockCouponReadStore)
		expectErr     error
		expectKind    error
		expectOutcome string
		expectAmount  string
	}{
		{
			name:  "success: percentage discount on the order amount",
			input: queries.ValidateCouponInput{Code: " save20 ", OrderAmount: amount(150)},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").Return(liveCoupon().BuildStored(), nil)
			},
			expectOutcome: "valid",
			expectAmount:  "30",
		},
		{
			name:  "success: percentage discount is capped",
			input: queries.ValidateCouponInput{Code: "SAVE20", OrderAmount: amount(1000)},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").
					Return(liveCoupon().WithMaximumDiscount(50).BuildStored(), nil)
			},
			expectOutcome: "valid",
			expectAmount:  "50",
		},
		{
			name:  "success: no order amount yields zero discount",
			input: queries.ValidateCouponInput{Code: "SAVE20"},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").Return(liveCoupon().BuildStored(), nil)
			},
			expectOutcome: "valid",
			expectAmount:  "0",
		},
		{
			name:  "success: audience all never looks up the customer",
			input: queries.ValidateCouponInput{Code: "SAVE20", UserID: &userID, OrderAmount: amount(100)},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").Return(liveCoupon().BuildStored(), nil)
			},
			expectOutcome: "valid",
			expectAmount:  "20",
		},
		{
			name:          "error: blank code",
			input:         queries.ValidateCouponInput{Code: "  "},
			expectErr:     queries.ErrCouponCodeRequired,
			expectOutcome: "invalid_argument",
		},
		{
			name:  "error: unknown code",
			input: queries.ValidateCouponInput{Code: "NOPE"},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "NOPE").Return(nil, notFoundErr())
			},
			expectErr:     coupon.ErrUnknownCode,
			expectOutcome: "not_found",
		},
		{
			name:  "error: below the minimum order amount",
			input: queries.ValidateCouponInput{Code: "SAVE20", OrderAmount: amount(40)},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").
					Return(liveCoupon().WithMinimumAmount(50).BuildStored(), nil)
			},
			expectKind:    errs.ErrBelowMinimum,
			expectOutcome: "below_minimum",
		},
		{
			name:  "error: new-users coupon for a returning customer",
			input: queries.ValidateCouponInput{Code: "SAVE20", UserID: &userID},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").
					Return(liveCoupon().ForAudience(coupon.AudienceNewUsers).BuildStored(), nil)
				store.EXPECT().CustomerStanding(gomock.Any(), gomock.Any(), userID).
					Return(&coupon.Customer{ID: userID, Found: true, PriorOrders: 3}, nil)
			},
			expectErr:     coupon.ErrNewUsersOnly,
			expectOutcome: "not_eligible",
		},
		{
			name: "error: product-scoped coupon with no matching cart item",
			input: queries.ValidateCouponInput{
				Code:  "SAVE20",
				Items: []coupon.CartItem{{ProductID: uuid.New(), Category: "sofas"}},
			},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").
					Return(liveCoupon().ForProducts(productID).BuildStored(), nil)
			},
			expectErr:     coupon.ErrNoEligibleProduct,
			expectOutcome: "not_applicable",
		},
		{
			name:  "error: usage limit reached",
			input: queries.ValidateCouponInput{Code: "SAVE20"},
			setupMock: func(store *queriesmock.MockCouponReadStore) {
				store.EXPECT().FindActiveByCode(gomock.Any(), gomock.Any(), "SAVE20").
					Return(liveCoupon().WithUsage(10, 10).BuildStored(), nil)
			},
			expectErr:     coupon.ErrUsageLimitExceeded,
			expectOutcome: "limit_exceeded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockCouponReadStore(ctrl)
			recorder := queriesmock.NewMockValidationRecorder(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(store)
			}
			recorder.EXPECT().RecordCouponValidation(tc.expectOutcome)
			q := queries.NewCouponQueries(newReadUoW(ctrl), store, clock.NewMockClock(fixedNow), recorder)

			res, err := q.Validate(ctx, tc.input)

			switch {
			case tc.expectErr != nil:
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, res)
			case tc.expectKind != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind))
				assert.Nil(t, res)
			default:
				require.NoError(t, err)
				assert.Equal(t, "SAVE20", res.Code)
				assert.True(t, decimal.RequireFromString(tc.expectAmount).Equal(res.DiscountAmount),
					"discount %s, want %s", res.DiscountAmount, tc.expectAmount)
			}
		})
	}
}
