package queries

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard_mock.go -package=queriesmock

import (
	"context"
	"time"

	"furnicraft/internal/domain/analytics"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dashboardTopProducts = 5

type RevenueSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	TotalOrders       int64           `json:"totalOrders"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TopProduct struct {
	ProductID     uuid.UUID       `json:"productId"`
	ProductName   string          `json:"productName"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

type UserCounts struct {
	Total   int64 `json:"total"`
	New     int64 `json:"new"`
	Active  int64 `json:"active"`
	Blocked int64 `json:"blocked"`
}

type OrderCounts struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

type ProductCounts struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"inStock"`
	OutOfStock int64 `json:"outOfStock"`
}

type Conversion struct {
	Rate            decimal.Decimal `json:"rate"`
	UniqueCustomers int64           `json:"uniqueCustomers"`
}

type DashboardOverview struct {
	Users      UserCounts     `json:"users"`
	Orders     OrderCounts    `json:"orders"`
	Revenue    RevenueSummary `json:"revenue"`
	Products   ProductCounts  `json:"products"`
	Conversion Conversion     `json:"conversion"`
}

type DashboardCharts struct {
	DailySales              []DailyRevenue   `json:"dailySales"`
	OrderStatusDistribution map[string]int64 `json:"orderStatusDistribution"`
	UserRegistrationTrend   []DailyCount     `json:"userRegistrationTrend"`
	TopProducts             []TopProduct     `json:"topProducts"`
}

type DashboardStats struct {
	Period   int               `json:"period"`
	Overview DashboardOverview `json:"overview"`
	Charts   DashboardCharts   `json:"charts"`
}

// AnalyticsReadStore aggregates over half-open [start, end) windows.
// Slice results are never nil and map results are never nil.
type AnalyticsReadStore interface {
	UserCounts(ctx context.Context, db db.DBTX, start, end time.Time) (UserCounts, error)
	OrderCounts(ctx context.Context, db db.DBTX, start, end time.Time) (OrderCounts, error)
	ProductCounts(ctx context.Context, db db.DBTX) (ProductCounts, error)
	CountOrdersCreated(ctx context.Context, db db.DBTX, start, end time.Time) (int64, error)
	OrdersByStatus(ctx context.Context, db db.DBTX, start, end time.Time) (map[string]int64, error)
	OrdersByPaymentStatus(ctx context.Context, db db.DBTX, start, end time.Time) (map[string]int64, error)
	// PaidRevenue leaves AverageOrderValue zero; callers derive it.
	PaidRevenue(ctx context.Context, db db.DBTX, start, end time.Time) (RevenueSummary, error)
	DailyRevenue(ctx context.Context, db db.DBTX, start, end time.Time) ([]DailyRevenue, error)
	DailyRegistrations(ctx context.Context, db db.DBTX, start, end time.Time) ([]DailyCount, error)
	TopProducts(ctx context.Context, db db.DBTX, start, end time.Time, limit int) ([]TopProduct, error)
	DistinctPurchasers(ctx context.Context, db db.DBTX, start, end time.Time) (int64, error)
}

type DashboardQueries interface {
	Stats(ctx context.Context, period analytics.Period) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	uow   shared.UnitOfWork
	store AnalyticsReadStore
	clock clock.Clock
}

func NewDashboardQueries(uow shared.UnitOfWork, store AnalyticsReadStore, clock clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{uow: uow, store: store, clock: clock}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context, period analytics.Period) (*DashboardStats, error) {
	start, end := period.Window(q.clock.Now())
	out := &DashboardStats{Period: period.Days()}
	ov, ch := &out.Overview, &out.Charts

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if ov.Users, err = q.store.UserCounts(ctx, db, start, end); err != nil {
			return err
		}
		if ov.Orders, err = q.store.OrderCounts(ctx, db, start, end); err != nil {
			return err
		}
		if ov.Revenue, err = q.store.PaidRevenue(ctx, db, start, end); err != nil {
			return err
		}
		if ov.Products, err = q.store.ProductCounts(ctx, db); err != nil {
			return err
		}
		if ov.Conversion.UniqueCustomers, err = q.store.DistinctPurchasers(ctx, db, start, end); err != nil {
			return err
		}
		if ch.DailySales, err = q.store.DailyRevenue(ctx, db, start, end); err != nil {
			return err
		}
		if ch.OrderStatusDistribution, err = q.store.OrdersByStatus(ctx, db, start, end); err != nil {
			return err
		}
		if ch.UserRegistrationTrend, err = q.store.DailyRegistrations(ctx, db, start, end); err != nil {
			return err
		}
		ch.TopProducts, err = q.store.TopProducts(ctx, db, start, end, dashboardTopProducts)
		return err
	})
	if err != nil {
		return nil, err
	}

	ov.Revenue.AverageOrderValue = analytics.Average(ov.Revenue.TotalRevenue, ov.Revenue.TotalOrders)
	ov.Conversion.Rate = analytics.ConversionRate(ov.Conversion.UniqueCustomers, ov.Users.Total)
	return out, nil
}
