package response

import "furnicraft/internal/usecase/queries"

type OrderListResponse struct {
	Orders     []*queries.OrderSummary `json:"orders"`
	Pagination OrderPagination         `json:"pagination"`
}

func FromOrderPage(p *queries.OrderPage) OrderListResponse {
	orders := p.Orders
	if orders == nil {
		orders = []*queries.OrderSummary{}
	}
	return OrderListResponse{Orders: orders, Pagination: FromOrderPagination(p.Pagination)}
}
