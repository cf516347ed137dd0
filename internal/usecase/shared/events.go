package shared

import (
	"time"

	"github.com/google/uuid"
)

const TopicOrderStatusChanged = "order.status_changed"

type OutboxEvent struct {
	ID        uuid.UUID
	Topic     string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

// OrderStatusChanged is published after every successful status update.
type OrderStatusChanged struct {
	OrderID        uuid.UUID `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	UserID         uuid.UUID `json:"userId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	TrackingNumber *string   `json:"trackingNumber,omitempty"`
	Carrier        *string   `json:"carrier,omitempty"`
	Note           string    `json:"note"`
	UpdatedBy      uuid.UUID `json:"updatedBy"`
	OccurredAt     time.Time `json:"occurredAt"`
}
