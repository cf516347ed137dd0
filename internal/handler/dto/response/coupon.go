package response

import "furnicraft/internal/usecase/queries"

type CouponListResponse struct {
	Coupons    []*queries.CouponView `json:"coupons"`
	Pagination CouponPagination      `json:"pagination"`
}

func FromCouponPage(p *queries.CouponPage) CouponListResponse {
	coupons := p.Coupons
	if coupons == nil {
		coupons = []*queries.CouponView{}
	}
	return CouponListResponse{Coupons: coupons, Pagination: FromCouponPagination(p.Pagination)}
}

type CouponValidationResponse struct {
	Coupon *queries.CouponValidation `json:"coupon"`
}
