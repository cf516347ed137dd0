package repository

import (
	"context"

	"furnicraft/internal/domain/order"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var (
		orderNumber               string
		userID                    uuid.UUID
		status, paymentStatus     string
		shippingMethod            string
		trackingNumber, carrier   pgtype.Text
		estimated, shipped, deliv pgtype.Timestamptz
		createdAt, updatedAt      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT order_number, user_id, status, payment_status, shipping_method,
		       tracking_number, carrier, estimated_delivery, shipped_at, delivered_at,
		       created_at, updated_at
		FROM orders
		WHERE id = $1
		FOR UPDATE`, id,
	).Scan(
		&orderNumber, &userID, &status, &paymentStatus, &shippingMethod,
		&trackingNumber, &carrier, &estimated, &shipped, &deliv,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	shipping := order.Shipping{
		Method:            order.ShippingMethod(shippingMethod),
		TrackingNumber:    pgconv.StringPtrFromPgtype(trackingNumber),
		Carrier:           pgconv.StringPtrFromPgtype(carrier),
		EstimatedDelivery: pgconv.TimePtrFromPgtype(estimated),
		ShippedAt:         pgconv.TimePtrFromPgtype(shipped),
		DeliveredAt:       pgconv.TimePtrFromPgtype(deliv),
	}
	return order.Reconstruct(
		id, orderNumber, userID,
		order.Status(status), order.PaymentStatus(paymentStatus),
		shipping, createdAt.Time, updatedAt.Time,
	), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	sh := o.Shipping()
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET
			status = $2, payment_status = $3, tracking_number = $4, carrier = $5,
			estimated_delivery = $6, shipped_at = $7, delivered_at = $8, updated_at = $9
		WHERE id = $1`,
		o.ID(), string(o.Status()), string(o.PaymentStatus()),
		pgconv.StringPtrToPgtype(sh.TrackingNumber), pgconv.StringPtrToPgtype(sh.Carrier),
		pgconv.TimePtrToPgtype(sh.EstimatedDelivery), pgconv.TimePtrToPgtype(sh.ShippedAt),
		pgconv.TimePtrToPgtype(sh.DeliveredAt), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) AppendTimeline(ctx context.Context, orderID uuid.UUID, entry order.TimelineEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO order_timeline (order_id, status, note, updated_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		orderID, string(entry.Status), entry.Note, entry.UpdatedBy, entry.Timestamp,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append order timeline", err)
	}
	return nil
}
