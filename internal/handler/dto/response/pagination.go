package response

import "furnicraft/internal/usecase/queries"

// Each listing names its total after the resource (totalCoupons, totalOrders, totalReviews, totalUsers).

type CouponPagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalCoupons int64 `json:"totalCoupons"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

type OrderPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type ReviewPagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalReviews int64 `json:"totalReviews"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

type UserPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

func FromCouponPagination(p queries.Pagination) CouponPagination {
	return CouponPagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalCoupons: p.Total,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

func FromOrderPagination(p queries.Pagination) OrderPagination {
	return OrderPagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalOrders: p.Total,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}

func FromReviewPagination(p queries.Pagination) ReviewPagination {
	return ReviewPagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalReviews: p.Total,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

func FromUserPagination(p queries.Pagination) UserPagination {
	return UserPagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalUsers:  p.Total,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}
