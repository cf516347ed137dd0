package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

import (
	"context"
	"fmt"
	"time"

	"furnicraft/internal/domain/analytics"
	"furnicraft/internal/domain/order"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var OrderSortFields = []string{"createdAt", "orderNumber", "total", "status"}

func ParseOrderSort(raw string) string {
	return pickSort(raw, OrderSortFields, "createdAt")
}

type OrderFilter struct {
	Status        *order.Status
	PaymentStatus *order.PaymentStatus
	Search        string
	Dates         *DateRange
	SortBy        string
	SortOrder     SortOrder
	Page          PageRequest
}

// AddressView mirrors the JSON stored in the orders address columns.
type AddressView struct {
	Type     string `json:"type"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

type PricingView struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type ShippingView struct {
	Method            string     `json:"method"`
	TrackingNumber    *string    `json:"trackingNumber"`
	Carrier           *string    `json:"carrier"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	ShippedAt         *time.Time `json:"shippedAt"`
	DeliveredAt       *time.Time `json:"deliveredAt"`
}

type OrderSummary struct {
	ID              uuid.UUID    `json:"id"`
	OrderNumber     string       `json:"orderNumber"`
	UserID          uuid.UUID    `json:"userId"`
	Status          order.Status `json:"status"`
	PaymentStatus   string       `json:"paymentStatus"`
	PaymentMethod   string       `json:"paymentMethod"`
	Pricing         PricingView  `json:"pricing"`
	Shipping        ShippingView `json:"shipping"`
	ShippingAddress AddressView  `json:"shippingAddress"`
	CouponCode      *string      `json:"couponCode"`
	ItemCount       int          `json:"itemCount"`
	CustomerName    string       `json:"customerName"`
	CustomerEmail   string       `json:"customerEmail"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	DaysSinceOrder  int          `json:"daysSinceOrder"`
	IsOverdue       bool         `json:"isOverdue"`
}

func (s *OrderSummary) annotate(now time.Time) {
	s.DaysSinceOrder = order.DaysSince(s.CreatedAt, now)
	s.IsOverdue = order.IsOverdue(s.Status, s.Shipping.EstimatedDelivery, now)
}

type OrderItemView struct {
	ProductID    uuid.UUID       `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Quantity     int32           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

type TimelineView struct {
	Status        string     `json:"status"`
	Timestamp     time.Time  `json:"timestamp"`
	Note          string     `json:"note"`
	UpdatedBy     *uuid.UUID `json:"updatedBy"`
	UpdatedByName *string    `json:"updatedByName"`
}

type CustomerView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type NotesView struct {
	Customer string `json:"customer"`
	Admin    string `json:"admin"`
}

type OrderDetails struct {
	OrderSummary
	Items                 []OrderItemView `json:"items"`
	BillingAddress        AddressView     `json:"billingAddress"`
	Notes                 NotesView       `json:"notes"`
	Timeline              []TimelineView  `json:"timeline"`
	Customer              CustomerView    `json:"customer"`
	EstimatedDeliveryDays *int            `json:"estimatedDeliveryDays"`
	TotalItems            int             `json:"totalItems"`
}

type OrderPage struct {
	Orders     []*OrderSummary
	Pagination Pagination
}

type OrderExport struct {
	Filename string
	Content  []byte
}

type OrderStats struct {
	Overview     OrderStatsOverview `json:"overview"`
	DailyRevenue []DailyRevenue     `json:"dailyRevenue"`
	TopProducts  []TopProduct       `json:"topProducts"`
}

type OrderStatsOverview struct {
	TotalOrders           int64            `json:"totalOrders"`
	Revenue               RevenueSummary   `json:"revenue"`
	OrdersByStatus        map[string]int64 `json:"ordersByStatus"`
	OrdersByPaymentStatus map[string]int64 `json:"ordersByPaymentStatus"`
}

type OrderReadStore interface {
	List(ctx context.Context, db db.DBTX, f OrderFilter) ([]*OrderSummary, int64, error)
	// ListForExport ignores f.Page and returns at most limit rows.
	ListForExport(ctx context.Context, db db.DBTX, f OrderFilter, limit int) ([]*OrderSummary, error)
	FindDetails(ctx context.Context, db db.DBTX, id uuid.UUID) (*OrderDetails, error)
}

// OrderSheetWriter renders orders into a downloadable spreadsheet.
type OrderSheetWriter interface {
	Render(orders []*OrderSummary) ([]byte, error)
}

type OrderQueries interface {
	List(ctx context.Context, f OrderFilter) (*OrderPage, error)
	Details(ctx context.Context, id uuid.UUID) (*OrderDetails, error)
	Stats(ctx context.Context, period analytics.Period) (*OrderStats, error)
	Export(ctx context.Context, f OrderFilter) (*OrderExport, error)
}

type orderQueriesImpl struct {
	uow       shared.UnitOfWork
	store     OrderReadStore
	analytics AnalyticsReadStore
	sheet     OrderSheetWriter
	clock     clock.Clock
}

func NewOrderQueries(
	uow shared.UnitOfWork,
	store OrderReadStore,
	analytics AnalyticsReadStore,
	sheet OrderSheetWriter,
	clock clock.Clock,
) OrderQueries {
	return &orderQueriesImpl{
		uow:       uow,
		store:     store,
		analytics: analytics,
		sheet:     sheet,
		clock:     clock,
	}
}

func (q *orderQueriesImpl) List(ctx context.Context, f OrderFilter) (*OrderPage, error) {
	var (
		rows  []*OrderSummary
		total int64
	)
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rows, total, err = q.store.List(ctx, db, f)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, r := range rows {
		r.annotate(now)
	}
	if rows == nil {
		rows = []*OrderSummary{}
	}
	return &OrderPage{Orders: rows, Pagination: NewPagination(f.Page, total)}, nil
}

func (q *orderQueriesImpl) Details(ctx context.Context, id uuid.UUID) (*OrderDetails, error) {
	var details *OrderDetails
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		details, err = q.store.FindDetails(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	details.annotate(now)
	details.EstimatedDeliveryDays = order.EstimatedDeliveryDays(details.Shipping.EstimatedDelivery, now)
	details.TotalItems = 0
	for _, it := range details.Items {
		details.TotalItems += int(it.Quantity)
	}
	return details, nil
}

func (q *orderQueriesImpl) Stats(ctx context.Context, period analytics.Period) (*OrderStats, error) {
	start, end := period.Window(q.clock.Now())
	stats := &OrderStats{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if stats.Overview.TotalOrders, err = q.analytics.CountOrdersCreated(ctx, db, start, end); err != nil {
			return err
		}
		if stats.Overview.OrdersByStatus, err = q.analytics.OrdersByStatus(ctx, db, start, end); err != nil {
			return err
		}
		if stats.Overview.OrdersByPaymentStatus, err = q.analytics.OrdersByPaymentStatus(ctx, db, start, end); err != nil {
			return err
		}
		if stats.Overview.Revenue, err = q.analytics.PaidRevenue(ctx, db, start, end); err != nil {
			return err
		}
		if stats.DailyRevenue, err = q.analytics.DailyRevenue(ctx, db, start, end); err != nil {
			return err
		}
		stats.TopProducts, err = q.analytics.TopProducts(ctx, db, start, end, orderStatsTopProducts)
		return err
	})
	if err != nil {
		return nil, err
	}
	stats.Overview.Revenue.AverageOrderValue = analytics.Average(stats.Overview.Revenue.TotalRevenue, stats.Overview.Revenue.TotalOrders)
	return stats, nil
}

const orderStatsTopProducts = 10

func (q *orderQueriesImpl) Export(ctx context.Context, f OrderFilter) (*OrderExport, error) {
	var rows []*OrderSummary
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rows, err = q.store.ListForExport(ctx, db, f, MaxExportRows)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, r := range rows {
		r.annotate(now)
	}
	content, err := q.sheet.Render(rows)
	if err != nil {
		return nil, err
	}
	return &OrderExport{
		Filename: fmt.Sprintf("orders-%s.xlsx", now.Format("20060102-150405")),
		Content:  content,
	}, nil
}
