//go:build e2e

package coupon_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"furnicraft/internal/domain/coupon"
	"furnicraft/internal/domain/user"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/usecase/queries"
	"furnicraft/tests/common/authtest"
	"furnicraft/tests/common/dbtest"
	"furnicraft/tests/common/httptest"
	"furnicraft/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	couponsURL  = "/api/coupons"
	validateURL = "/api/validate-coupon"
)

type couponSuite struct {
	e2e.SharedSuite
	adminToken string
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(couponSuite))
}

func (s *couponSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", user.RoleAdmin)
}

func couponURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", couponsURL, id)
}

func intPtr(v int) *int { return &v }

func (s *couponSuite) createBody(code string) map[string]any {
	now := time.Now().UTC()
	return map[string]any{
		"code":          code,
		"name":          "Spring sale",
		"description":   "Ten percent off everything",
		"type":          "percentage",
		"value":         10,
		"minimumAmount": 100,
		"validFrom":     now.Add(-time.Hour).Format(time.RFC3339),
		"validUntil":    now.Add(7 * 24 * time.Hour).Format(time.RFC3339),
	}
}

func (s *couponSuite) TestCreate() {
	s.Run("creates an uppercased coupon owned by the caller", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, s.createBody("spring10"), s.adminToken)

		var view queries.CouponView
		httptest.AssertSuccessMessage(t, w, http.StatusCreated, "Coupon created successfully", &view)
		require.Equal(t, "SPRING10", view.Code)
		require.Equal(t, coupon.TypePercentage, view.Type)
		require.True(t, decimal.NewFromInt(10).Equal(view.Value))
		require.True(t, view.IsCurrentlyActive)
		require.NotNil(t, view.CreatedBy)
		require.Zero(t, view.UsedCount)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupons", "code = $1", "SPRING10"))
	})

	s.Run("rejects a duplicate code regardless of case", func() {
		t := s.T()
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "SPRING10", Value: 10})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, s.createBody("Spring10"), s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Coupon code already exists")
	})

	s.Run("names every required field when one is missing", func() {
		t := s.T()
		body := s.createBody("SPRING10")
		delete(body, "validUntil")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, body, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Code, name, type, value, validFrom, and validUntil are required")
	})

	s.Run("rejects a percentage over 100", func() {
		t := s.T()
		body := s.createBody("SPRING10")
		body["value"] = 150

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, body, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Percentage value must be between 0 and 100")
	})

	s.Run("requires an admin", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", user.RoleGeneral)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, s.createBody("SPRING10"), token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Admin access required")
	})
}

func (s *couponSuite) TestList() {
	s.Run("filters by status and paginates", func() {
		t := s.T()
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "LIVE1", Value: 5})
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "LIVE2", Value: 15})
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{
			Code: "OLD", Value: 5,
			ValidFrom: time.Now().Add(-60 * 24 * time.Hour), ValidUntil: time.Now().Add(-30 * 24 * time.Hour),
		})
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "OFF", Value: 5, Inactive: true})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?status=active&limit=1", nil, s.adminToken)

		var page resdto.CouponListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Coupons, 1)
		require.Equal(t, int64(2), page.Pagination.TotalCoupons)
		require.Equal(t, 2, page.Pagination.TotalPages)
		require.True(t, page.Pagination.HasNext)
		require.False(t, page.Pagination.HasPrev)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?status=expired", nil, s.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Coupons, 1)
		require.Equal(t, "OLD", page.Coupons[0].Code)
		require.True(t, page.Coupons[0].IsExpired)
	})

	s.Run("searches code and name", func() {
		t := s.T()
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "SOFA20", Value: 20})
		dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "TABLE5", Value: 5})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL+"?search=sofa", nil, s.adminToken)

		var page resdto.CouponListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Coupons, 1)
		require.Equal(t, "SOFA20", page.Coupons[0].Code)
	})

	s.Run("unknown status", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, couponsURL+"?status=archived", nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Status must be")
	})
}

func (s *couponSuite) TestUpdate() {
	s.Run("applies a partial update", func() {
		t := s.T()
		id := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "SPRING10", Value: 10})

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, couponURL(id),
			map[string]any{"value": 25, "isActive": false}, s.adminToken)

		var view queries.CouponView
		httptest.AssertSuccessMessage(t, w, http.StatusOK, "Coupon updated successfully", &view)
		require.True(t, decimal.NewFromInt(25).Equal(view.Value))
		require.False(t, view.IsActive)
		require.Equal(t, "SPRING10", view.Code)
	})

	s.Run("cannot drop the limit below redemptions", func() {
		t := s.T()
		id := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "USED", Value: 10, UsageLimit: intPtr(10), UsedCount: 4})

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, couponURL(id),
			map[string]any{"usageLimit": 3}, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Usage limit cannot be lower than the number of redemptions")
	})

	s.Run("unknown coupon", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, couponURL(uuid.New()),
			map[string]any{"name": "x"}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Coupon not found")
	})
}

func (s *couponSuite) TestDelete() {
	s.Run("removes an unused coupon", func() {
		t := s.T()
		id := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "UNUSED", Value: 10})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, couponURL(id), nil, s.adminToken)
		httptest.AssertSuccessMessage(t, w, http.StatusOK, "Coupon deleted successfully", nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, couponURL(id), nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Coupon not found")
	})

	s.Run("refuses a redeemed coupon", func() {
		t := s.T()
		id := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "USED", Value: 10, UsedCount: 1})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, couponURL(id), nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Deactivate it instead")
	})
}

func (s *couponSuite) TestValidate() {
	tests := []struct {
		name           string
		fixture        dbtest.CouponFixture
		body           map[string]any
		expectedStatus int
		expectedMsg    string
		expectedAmount string
	}{
		{
			name:           "percentage discount",
			fixture:        dbtest.CouponFixture{Code: "TEN", Value: 10},
			body:           map[string]any{"code": "ten", "orderAmount": 450},
			expectedStatus: http.StatusOK,
			expectedAmount: "45",
		},
		{
			name:           "fixed discount never exceeds the order",
			fixture:        dbtest.CouponFixture{Code: "FIFTY", Type: "fixed", Value: 50},
			body:           map[string]any{"code": "FIFTY", "orderAmount": 30},
			expectedStatus: http.StatusOK,
			expectedAmount: "30",
		},
		{
			name:           "below minimum",
			fixture:        dbtest.CouponFixture{Code: "BIG", Value: 10, MinimumAmount: 500},
			body:           map[string]any{"code": "BIG", "orderAmount": 100},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Minimum order amount of $500",
		},
		{
			name:           "exhausted",
			fixture:        dbtest.CouponFixture{Code: "GONE", Value: 10, UsageLimit: intPtr(2), UsedCount: 2},
			body:           map[string]any{"code": "GONE", "orderAmount": 100},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Coupon usage limit exceeded",
		},
		{
			name: "not yet started",
			fixture: dbtest.CouponFixture{
				Code: "SOON", Value: 10,
				ValidFrom: time.Now().Add(24 * time.Hour), ValidUntil: time.Now().Add(48 * time.Hour),
			},
			body:           map[string]any{"code": "SOON", "orderAmount": 100},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Coupon is not valid at this time",
		},
		{
			name:           "inactive coupons are unknown",
			fixture:        dbtest.CouponFixture{Code: "OFF", Value: 10, Inactive: true},
			body:           map[string]any{"code": "OFF", "orderAmount": 100},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Invalid coupon code",
		},
		{
			name:           "missing code",
			body:           map[string]any{"orderAmount": 100},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Coupon code is required",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			if tt.fixture.Code != "" {
				dbtest.CreateTestCoupon(t, s.DB, tt.fixture)
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, tt.body, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
				return
			}
			var res resdto.CouponValidationResponse
			httptest.AssertSuccessMessage(t, w, http.StatusOK, "Coupon is valid", &res)
			require.NotNil(t, res.Coupon)
			require.Equal(t, tt.fixture.Code, res.Coupon.Code)
			require.True(t, decimal.RequireFromString(tt.expectedAmount).Equal(res.Coupon.DiscountAmount),
				"got discount %s", res.Coupon.DiscountAmount)
		})
	}

	s.Run("new-user coupons check order history", func() {
		t := s.T()
		shopper := dbtest.CreateTestUser(t, s.DB, "returning@example.com", user.RoleGeneral.String())
		products := s.productIDs(t)
		dbtest.CreateTestOrder(t, s.DB, dbtest.OrderFixture{
			Number: "ORD-1", UserID: shopper, ProductID: products[0], UnitPrice: 39800, Status: "delivered",
		})
		id := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "WELCOME", Value: 10})
		_, err := s.DB.Exec(context.Background(), `UPDATE coupons SET user_restrictions = 'new_users' WHERE id = $1`, id)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL,
			map[string]any{"code": "WELCOME", "orderAmount": 100, "userId": shopper}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "This coupon is only for new users")
	})

	s.Run("category coupons need a matching cart line", func() {
		t := s.T()
		products := s.productIDs(t)
		id := dbtest.CreateTestCoupon(t, s.DB, dbtest.CouponFixture{Code: "SOFAS", Value: 10})
		_, err := s.DB.Exec(context.Background(),
			`UPDATE coupons SET applicable_to = 'category', categories = '{sofas}' WHERE id = $1`, id)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, map[string]any{
			"code": "SOFAS", "orderAmount": 100,
			"products": []map[string]any{{"productId": products[0], "category": "tables"}},
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not applicable to any categories")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, map[string]any{
			"code": "SOFAS", "orderAmount": 100,
			"products": []map[string]any{{"productId": products[1], "category": "sofas"}},
		}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})
}

// productIDs returns the seeded catalog ordered by name.
func (s *couponSuite) productIDs(t *testing.T) []uuid.UUID {
	t.Helper()
	rows, err := s.DB.Query(context.Background(), `SELECT id FROM products ORDER BY product_name DESC`)
	require.NoError(t, err)
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	require.Len(t, ids, 2)
	return ids
}
