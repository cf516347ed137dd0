package readstore

import (
	"context"
	"time"

	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// Day buckets follow the session time zone (DB_TIMEZONE).
const dayBucket = `to_char(created_at, 'YYYY-MM-DD')`

type AnalyticsReadStore struct{}

func NewAnalyticsReadStore() *AnalyticsReadStore {
	return &AnalyticsReadStore{}
}

func (s *AnalyticsReadStore) UserCounts(ctx context.Context, db db.DBTX, start, end time.Time) (queries.UserCounts, error) {
	var c queries.UserCounts
	err := db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE created_at >= $1 AND created_at < $2),
		       count(*) FILTER (WHERE last_login >= $1 AND last_login < $2),
		       count(*) FILTER (WHERE is_blocked)
		FROM users`,
		start, end,
	).Scan(&c.Total, &c.New, &c.Active, &c.Blocked)
	if err != nil {
		return c, infra.WrapRepoErr("failed to count users", err)
	}
	return c, nil
}

func (s *AnalyticsReadStore) OrderCounts(ctx context.Context, db db.DBTX, start, end time.Time) (queries.OrderCounts, error) {
	var c queries.OrderCounts
	err := db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE created_at >= $1 AND created_at < $2),
		       count(*) FILTER (WHERE status = 'delivered' AND created_at >= $1 AND created_at < $2),
		       count(*) FILTER (WHERE status IN ('pending', 'confirmed', 'processing'))
		FROM orders`,
		start, end,
	).Scan(&c.Total, &c.New, &c.Completed, &c.Pending)
	if err != nil {
		return c, infra.WrapRepoErr("failed to count orders", err)
	}
	return c, nil
}

func (s *AnalyticsReadStore) ProductCounts(ctx context.Context, db db.DBTX) (queries.ProductCounts, error) {
	var c queries.ProductCounts
	err := db.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE in_stock), count(*) FILTER (WHERE NOT in_stock)
		FROM products`,
	).Scan(&c.Total, &c.InStock, &c.OutOfStock)
	if err != nil {
		return c, infra.WrapRepoErr("failed to count products", err)
	}
	return c, nil
}

func (s *AnalyticsReadStore) CountOrdersCreated(ctx context.Context, db db.DBTX, start, end time.Time) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, `SELECT count(*) FROM orders WHERE created_at >= $1 AND created_at < $2`, start, end).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders in period", err)
	}
	return n, nil
}

func (s *AnalyticsReadStore) OrdersByStatus(ctx context.Context, db db.DBTX, start, end time.Time) (map[string]int64, error) {
	return s.histogram(ctx, db, "status", start, end)
}

func (s *AnalyticsReadStore) OrdersByPaymentStatus(ctx context.Context, db db.DBTX, start, end time.Time) (map[string]int64, error) {
	return s.histogram(ctx, db, "payment_status", start, end)
}

// histogram groups orders in the window by column, which must be a trusted identifier.
func (s *AnalyticsReadStore) histogram(ctx context.Context, db db.DBTX, column string, start, end time.Time) (map[string]int64, error) {
	rows, err := db.Query(ctx,
		`SELECT `+column+`, count(*) FROM orders WHERE created_at >= $1 AND created_at < $2 GROUP BY `+column,
		start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to group orders by "+column, err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order histogram", err)
		}
		out[key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order histogram", err)
	}
	return out, nil
}

func (s *AnalyticsReadStore) PaidRevenue(ctx context.Context, db db.DBTX, start, end time.Time) (queries.RevenueSummary, error) {
	var r queries.RevenueSummary
	err := db.QueryRow(ctx, `
		SELECT COALESCE(sum(total), 0), count(*)
		FROM orders
		WHERE payment_status = 'paid' AND created_at >= $1 AND created_at < $2`,
		start, end,
	).Scan(&r.TotalRevenue, &r.TotalOrders)
	if err != nil {
		return r, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return r, nil
}

func (s *AnalyticsReadStore) DailyRevenue(ctx context.Context, db db.DBTX, start, end time.Time) ([]queries.DailyRevenue, error) {
	rows, err := db.Query(ctx, `
		SELECT `+dayBucket+` AS day, sum(total), count(*)
		FROM orders
		WHERE payment_status = 'paid' AND created_at >= $1 AND created_at < $2
		GROUP BY day ORDER BY day`,
		start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load daily revenue", err)
	}
	return collect(rows, "daily revenue", func(row pgx.CollectableRow) (queries.DailyRevenue, error) {
		var d queries.DailyRevenue
		err := row.Scan(&d.Date, &d.Revenue, &d.Orders)
		return d, err
	})
}

func (s *AnalyticsReadStore) DailyRegistrations(ctx context.Context, db db.DBTX, start, end time.Time) ([]queries.DailyCount, error) {
	rows, err := db.Query(ctx, `
		SELECT `+dayBucket+` AS day, count(*)
		FROM users
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY day ORDER BY day`,
		start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load registrations", err)
	}
	return collect(rows, "registrations", func(row pgx.CollectableRow) (queries.DailyCount, error) {
		var d queries.DailyCount
		err := row.Scan(&d.Date, &d.Count)
		return d, err
	})
}

func (s *AnalyticsReadStore) TopProducts(ctx context.Context, db db.DBTX, start, end time.Time, limit int) ([]queries.TopProduct, error) {
	rows, err := db.Query(ctx, `
		SELECT i.product_id, max(i.product_name), sum(i.quantity), sum(i.total_price)
		FROM order_items i JOIN orders o ON o.id = i.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		GROUP BY i.product_id
		ORDER BY sum(i.quantity) DESC, i.product_id
		LIMIT $3`,
		start, end, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load top products", err)
	}
	return collect(rows, "top products", func(row pgx.CollectableRow) (queries.TopProduct, error) {
		var p queries.TopProduct
		err := row.Scan(&p.ProductID, &p.ProductName, &p.TotalQuantity, &p.TotalRevenue)
		return p, err
	})
}

func (s *AnalyticsReadStore) DistinctPurchasers(ctx context.Context, db db.DBTX, start, end time.Time) (int64, error) {
	var n int64
	err := db.QueryRow(ctx,
		`SELECT count(DISTINCT user_id) FROM orders WHERE created_at >= $1 AND created_at < $2`,
		start, end,
	).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count purchasers", err)
	}
	return n, nil
}

// collect drains rows into a non-nil slice.
func collect[T any](rows pgx.Rows, what string, fn pgx.RowToFunc[T]) ([]T, error) {
	out, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read "+what, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
