//go:build unit || e2e

package builder

import (
	"time"

	"furnicraft/internal/domain/order"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID            uuid.UUID
	OrderNumber   string
	UserID        uuid.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Shipping      order.Shipping
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		OrderNumber:   "ORD-1700000000000-0001",
		UserID:        uuid.New(),
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentPaid,
		Shipping:      order.Shipping{Method: order.ShippingStandard},
		CreatedAt:     time.Now().Add(-72 * time.Hour),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() *order.Order {
	return order.Reconstruct(b.ID, b.OrderNumber, b.UserID, b.Status, b.PaymentStatus, b.Shipping, b.CreatedAt, b.CreatedAt)
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

func (b *OrderBuilder) WithPaymentStatus(p order.PaymentStatus) *OrderBuilder {
	b.PaymentStatus = p
	return b
}

func (b *OrderBuilder) WithUserID(id uuid.UUID) *OrderBuilder {
	b.UserID = id
	return b
}

func (b *OrderBuilder) WithOrderNumber(n string) *OrderBuilder {
	b.OrderNumber = n
	return b
}
