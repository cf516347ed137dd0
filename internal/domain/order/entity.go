package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Shipping struct {
	Method            ShippingMethod
	TrackingNumber    *string
	Carrier           *string
	EstimatedDelivery *time.Time
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
}

type TimelineEntry struct {
	Status    Status
	Timestamp time.Time
	Note      string
	UpdatedBy *uuid.UUID
}

// Order is the write-side aggregate. Only the status update mutates it;
// line items and pricing are fixed at checkout and live in read models.
type Order struct {
	id            uuid.UUID
	orderNumber   string
	userID        uuid.UUID
	status        Status
	paymentStatus PaymentStatus
	shipping      Shipping
	createdAt     time.Time
	updatedAt     time.Time
}

func Reconstruct(
	id uuid.UUID,
	orderNumber string,
	userID uuid.UUID,
	status Status,
	paymentStatus PaymentStatus,
	shipping Shipping,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		userID:        userID,
		status:        status,
		paymentStatus: paymentStatus,
		shipping:      shipping,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

type StatusChange struct {
	Status            Status
	Note              string
	TrackingNumber    string
	Carrier           string
	EstimatedDelivery *time.Time
	UpdatedBy         uuid.UUID
}

// ChangeStatus applies a status update with its side effects and returns
// the timeline entry to append.
func (o *Order) ChangeStatus(ch StatusChange, policy TransitionPolicy, now time.Time) (TimelineEntry, error) {
	if !ch.Status.IsValid() {
		return TimelineEntry{}, ErrInvalidStatus
	}
	if err := policy.Allow(o.status, ch.Status); err != nil {
		return TimelineEntry{}, err
	}

	switch ch.Status {
	case StatusShipped:
		if ch.TrackingNumber != "" {
			o.shipping.TrackingNumber = &ch.TrackingNumber
		}
		if ch.Carrier != "" {
			o.shipping.Carrier = &ch.Carrier
		}
		if ch.EstimatedDelivery != nil {
			o.shipping.EstimatedDelivery = ch.EstimatedDelivery
		}
		o.shipping.ShippedAt = &now
	case StatusDelivered:
		o.shipping.DeliveredAt = &now
	case StatusCancelled:
		o.paymentStatus = PaymentRefunded
	}
	o.status = ch.Status
	o.updatedAt = now

	note := strings.TrimSpace(ch.Note)
	if note == "" {
		note = fmt.Sprintf("Status changed to %s", ch.Status)
	}
	updatedBy := ch.UpdatedBy
	return TimelineEntry{
		Status:    ch.Status,
		Timestamp: now,
		Note:      note,
		UpdatedBy: &updatedBy,
	}, nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) OrderNumber() string          { return o.orderNumber }
func (o *Order) UserID() uuid.UUID            { return o.userID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Shipping() Shipping           { return o.shipping }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
