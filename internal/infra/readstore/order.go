package readstore

import (
	"context"
	"strconv"

	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/pgconv"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
)

const orderSummaryColumns = `
	o.id, o.order_number, o.user_id, o.status, o.payment_status, o.payment_method,
	o.subtotal, o.shipping_cost, o.tax, o.discount, o.total,
	o.shipping_method, o.tracking_number, o.carrier, o.estimated_delivery, o.shipped_at, o.delivered_at,
	o.shipping_address, o.coupon_code,
	(SELECT count(*) FROM order_items i WHERE i.order_id = o.id),
	u.name, u.email, o.created_at, o.updated_at`

const orderFrom = ` FROM orders o JOIN users u ON u.id = o.user_id`

var orderSortColumns = map[string]string{
	"createdAt":   "o.created_at",
	"orderNumber": "o.order_number",
	"total":       "o.total",
	"status":      "o.status",
}

type OrderReadStore struct{}

func NewOrderReadStore() *OrderReadStore {
	return &OrderReadStore{}
}

func orderWhere(f queries.OrderFilter) *where {
	w := &where{}
	if f.Status != nil {
		w.add("o.status = ?", string(*f.Status))
	}
	if f.PaymentStatus != nil {
		w.add("o.payment_status = ?", string(*f.PaymentStatus))
	}
	if f.Search != "" {
		p := contains(f.Search)
		w.add("(o.order_number ILIKE ? OR o.shipping_address->>'fullName' ILIKE ? OR o.shipping_address->>'city' ILIKE ?)", p, p, p)
	}
	if f.Dates != nil {
		w.add("o.created_at >= ? AND o.created_at < ?", f.Dates.From, f.Dates.To)
	}
	return w
}

func summaryDest(s *queries.OrderSummary) []any {
	return []any{
		&s.ID, &s.OrderNumber, &s.UserID, &s.Status, &s.PaymentStatus, &s.PaymentMethod,
		&s.Pricing.Subtotal, &s.Pricing.Shipping, &s.Pricing.Tax, &s.Pricing.Discount, &s.Pricing.Total,
		&s.Shipping.Method, &s.Shipping.TrackingNumber, &s.Shipping.Carrier,
		&s.Shipping.EstimatedDelivery, &s.Shipping.ShippedAt, &s.Shipping.DeliveredAt,
		&s.ShippingAddress, &s.CouponCode, &s.ItemCount,
		&s.CustomerName, &s.CustomerEmail, &s.CreatedAt, &s.UpdatedAt,
	}
}

func (s *OrderReadStore) List(ctx context.Context, db db.DBTX, f queries.OrderFilter) ([]*queries.OrderSummary, int64, error) {
	w := orderWhere(f)

	var total int64
	if err := db.QueryRow(ctx, `SELECT count(*)`+orderFrom+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count orders", err)
	}

	limit, args := w.page(f.Page)
	out, err := s.querySummaries(ctx, db,
		`SELECT `+orderSummaryColumns+orderFrom+w.String()+orderBy(orderSortColumns, f.SortBy, f.SortOrder, "o.id")+limit,
		args,
	)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *OrderReadStore) ListForExport(ctx context.Context, db db.DBTX, f queries.OrderFilter, limit int) ([]*queries.OrderSummary, error) {
	w := orderWhere(f)
	args := append(w.args, limit)
	return s.querySummaries(ctx, db,
		`SELECT `+orderSummaryColumns+orderFrom+w.String()+
			orderBy(orderSortColumns, f.SortBy, f.SortOrder, "o.id")+` LIMIT $`+strconv.Itoa(len(args)),
		args,
	)
}

func (s *OrderReadStore) querySummaries(ctx context.Context, db db.DBTX, sql string, args []any) ([]*queries.OrderSummary, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	out := []*queries.OrderSummary{}
	for rows.Next() {
		var sum queries.OrderSummary
		if err := rows.Scan(summaryDest(&sum)...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		out = append(out, &sum)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return out, nil
}

func (s *OrderReadStore) FindDetails(ctx context.Context, db db.DBTX, id uuid.UUID) (*queries.OrderDetails, error) {
	var d queries.OrderDetails
	dest := append(summaryDest(&d.OrderSummary),
		&d.BillingAddress, &d.Notes.Customer, &d.Notes.Admin,
		&d.Customer.ID, &d.Customer.Name, &d.Customer.Email, &d.Customer.Phone,
	)
	err := db.QueryRow(ctx, `
		SELECT `+orderSummaryColumns+`,
			o.billing_address, o.customer_notes, o.admin_notes, u.id, u.name, u.email, u.phone`+
		orderFrom+` WHERE o.id = $1`,
		id,
	).Scan(dest...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order details", err)
	}

	if d.Items, err = s.items(ctx, db, id); err != nil {
		return nil, err
	}
	if d.Timeline, err = s.timeline(ctx, db, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *OrderReadStore) items(ctx context.Context, db db.DBTX, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := db.Query(ctx, `
		SELECT product_id, product_name, product_image, quantity, price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY product_name, id`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	out := []queries.OrderItemView{}
	for rows.Next() {
		var it queries.OrderItemView
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.ProductImage, &it.Quantity, &it.Price, &it.TotalPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return out, nil
}

func (s *OrderReadStore) timeline(ctx context.Context, db db.DBTX, orderID uuid.UUID) ([]queries.TimelineView, error) {
	rows, err := db.Query(ctx, `
		SELECT t.status, t.created_at, t.note, t.updated_by, u.name
		FROM order_timeline t LEFT JOIN users u ON u.id = t.updated_by
		WHERE t.order_id = $1
		ORDER BY t.created_at, t.id`,
		orderID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order timeline", err)
	}
	defer rows.Close()

	out := []queries.TimelineView{}
	for rows.Next() {
		var t queries.TimelineView
		if err := rows.Scan(&t.Status, &t.Timestamp, &t.Note, &t.UpdatedBy, &t.UpdatedByName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeline entry", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order timeline", err)
	}
	return out, nil
}
