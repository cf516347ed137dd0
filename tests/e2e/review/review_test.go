//go:build e2e

package review_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

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
	reviewsURL  = "/api/reviews"
	featuredURL = "/api/featured-products"
)

type reviewSuite struct {
	e2e.SharedSuite
	productID uuid.UUID
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.productID = dbtest.CreateTestProduct(s.T(), s.DB, "Walnut Armchair", "chairs", 25000)
}

func productReviewsURL(id uuid.UUID) string {
	return fmt.Sprintf("/api/products/%s/reviews", id)
}

func (s *reviewSuite) body(rating int) map[string]any {
	return map[string]any{
		"productId": s.productID.String(),
		"rating":    rating,
		"title":     "Solid build",
		"comment":   "No wobble after a month of daily use.",
	}
}

func (s *reviewSuite) productRating(t *testing.T) (decimal.Decimal, int) {
	t.Helper()
	var (
		rating decimal.Decimal
		count  int
	)
	err := s.DB.QueryRow(context.Background(),
		`SELECT rating, review_count FROM products WHERE id = $1`, s.productID).Scan(&rating, &count)
	require.NoError(t, err)
	return rating, count
}

func (s *reviewSuite) TestCreate() {
	s.Run("stores the review and refreshes the product rating", func() {
		t := s.T()
		first := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", user.RoleGeneral)
		second := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", user.RoleGeneral)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, s.body(5), first)
		var view queries.ReviewView
		httptest.AssertSuccessMessage(t, w, http.StatusCreated, "Review created successfully", &view)
		require.Equal(t, s.productID, view.ProductID)
		require.True(t, view.IsApproved)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, s.body(2), second)
		httptest.AssertSuccessMessage(t, w, http.StatusCreated, "Review created successfully", nil)

		rating, count := s.productRating(t)
		require.Equal(t, 2, count)
		require.True(t, decimal.RequireFromString("3.5").Equal(rating), "rating %s", rating)
	})

	s.Run("rejects a second review from the same user", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "repeat@example.com", user.RoleGeneral)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, s.body(4), token)
		httptest.AssertSuccessMessage(t, w, http.StatusCreated, "Review created successfully", nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, s.body(1), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "You have already reviewed this product")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reviews", "product_id = $1", s.productID))
	})

	s.Run("404 for an unknown product", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lost@example.com", user.RoleGeneral)
		body := s.body(4)
		body["productId"] = uuid.NewString()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("401 without a session", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, s.body(4), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *reviewSuite) TestListByProduct() {
	s.Run("filters by rating while stats cover every review", func() {
		t := s.T()
		for i, rating := range []int{5, 5, 3} {
			token := authtest.CreateAndLogin(t, s.DB, s.Router, fmt.Sprintf("buyer%d@example.com", i), user.RoleGeneral)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, s.body(rating), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, productReviewsURL(s.productID)+"?rating=5&limit=1", nil, "")

		var res resdto.ReviewListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Reviews, 1)
		require.Equal(t, 5, res.Reviews[0].Rating)
		require.NotNil(t, res.Reviews[0].User)
		require.Equal(t, resdto.ReviewPagination{CurrentPage: 1, TotalPages: 2, TotalReviews: 2, HasNext: true}, res.Pagination)
		require.Equal(t, int64(3), res.RatingStats.Total)
		require.Equal(t, "4.33", res.RatingStats.Average.StringFixed(2))
		require.Equal(t, queries.RatingBucket{Rating: 3, Count: 1}, res.RatingStats.Distribution[2])
	})
}

func (s *reviewSuite) TestFeatured() {
	s.Run("returns the newest active products of a category", func() {
		t := s.T()
		older := dbtest.CreateTestProduct(t, s.DB, "Pine Chair", "chairs", 9000)
		hidden := dbtest.CreateTestProduct(t, s.DB, "Retired Chair", "chairs", 5000)
		_, err := s.DB.Exec(context.Background(), `UPDATE products SET created_at = now() - interval '1 day' WHERE id = $1`, older)
		require.NoError(t, err)
		_, err = s.DB.Exec(context.Background(), `UPDATE products SET is_active = FALSE WHERE id = $1`, hidden)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, featuredURL+"?category=chairs", nil, "")

		var cards []queries.ProductCard
		httptest.AssertSuccessMessage(t, w, http.StatusOK, "Featured products fetched successfully", &cards)
		require.Len(t, cards, 2)
		require.Equal(t, s.productID, cards[0].ID)
		require.Equal(t, older, cards[1].ID)
	})
}
