package request

import (
	"time"

	"furnicraft/internal/domain/order"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListOrdersQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Limit         int    `form:"limit" binding:"omitempty,min=1"`
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
	Search        string `form:"search"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
	SortBy        string `form:"sortBy"`
	SortOrder     string `form:"sortOrder"`
}

// ToFilter treats "all" and empty status values as no filter. Dates are
// calendar days in loc.
func (q *ListOrdersQuery) ToFilter(loc *time.Location) (queries.OrderFilter, error) {
	dates, err := queries.NewDateRange(q.StartDate, q.EndDate, loc)
	if err != nil {
		return queries.OrderFilter{}, err
	}
	f := queries.OrderFilter{
		Search:    q.Search,
		Dates:     dates,
		SortBy:    queries.ParseOrderSort(q.SortBy),
		SortOrder: queries.ParseSortOrder(q.SortOrder),
		Page:      queries.NewPageRequest(q.Page, q.Limit),
	}
	if q.Status != "" && q.Status != "all" {
		s, err := order.ParseStatus(q.Status)
		if err != nil {
			return queries.OrderFilter{}, err
		}
		f.Status = &s
	}
	if q.PaymentStatus != "" && q.PaymentStatus != "all" {
		p, err := order.ParsePaymentStatus(q.PaymentStatus)
		if err != nil {
			return queries.OrderFilter{}, err
		}
		f.PaymentStatus = &p
	}
	return f, nil
}

type UpdateOrderStatusRequest struct {
	OrderID           string     `json:"orderId"`
	Status            string     `json:"status"`
	Note              string     `json:"note" binding:"max=500"`
	TrackingNumber    string     `json:"trackingNumber" binding:"max=100"`
	Carrier           string     `json:"carrier" binding:"max=100"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

func (r *UpdateOrderStatusRequest) ToInput(actorID uuid.UUID) (commands.UpdateOrderStatusInput, error) {
	in := commands.UpdateOrderStatusInput{
		Status:            r.Status,
		Note:              r.Note,
		TrackingNumber:    r.TrackingNumber,
		Carrier:           r.Carrier,
		EstimatedDelivery: r.EstimatedDelivery,
		ActorID:           actorID,
	}
	if r.OrderID == "" {
		return in, nil
	}
	id, err := uuid.Parse(r.OrderID)
	if err != nil {
		return in, order.ErrNotFound
	}
	in.OrderID = id
	return in, nil
}
