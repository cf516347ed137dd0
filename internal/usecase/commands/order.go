package commands

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"furnicraft/internal/domain/order"
	"furnicraft/internal/infra"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateOrderStatusInput struct {
	OrderID           uuid.UUID
	Status            string
	Note              string
	TrackingNumber    string
	Carrier           string
	EstimatedDelivery *time.Time
	ActorID           uuid.UUID
}

type OrderCommands interface {
	UpdateStatus(ctx context.Context, in UpdateOrderStatusInput) error
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	policy   order.TransitionPolicy
	clock    clock.Clock
	recorder StatusUpdateRecorder
}

func NewOrderCommands(uow shared.UnitOfWork, policy order.TransitionPolicy, clock clock.Clock, recorder StatusUpdateRecorder) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		policy:   policy,
		clock:    clock,
		recorder: recorder,
	}
}

// UpdateStatus moves the order to a new status, appends a timeline entry
// and queues an order.status_changed event in the same transaction.
func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, in UpdateOrderStatusInput) error {
	if in.OrderID == uuid.Nil || in.Status == "" {
		return order.ErrMissingFields
	}
	// Status is validated by ChangeStatus so an absent order reports NotFound first.
	status := order.Status(in.Status)

	now := c.clock.Now()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, in.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return order.ErrNotFound
			}
			return err
		}

		previous := o.Status()
		entry, err := o.ChangeStatus(order.StatusChange{
			Status:            status,
			Note:              in.Note,
			TrackingNumber:    in.TrackingNumber,
			Carrier:           in.Carrier,
			EstimatedDelivery: in.EstimatedDelivery,
			UpdatedBy:         in.ActorID,
		}, c.policy, now)
		if err != nil {
			return err
		}

		if err := tx.Orders().UpdateStatus(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return order.ErrNotFound
			}
			return err
		}
		if err := tx.Orders().AppendTimeline(ctx, o.ID(), entry); err != nil {
			return err
		}

		shipping := o.Shipping()
		return tx.Outbox().Enqueue(ctx, shared.TopicOrderStatusChanged, shared.OrderStatusChanged{
			OrderID:        o.ID(),
			OrderNumber:    o.OrderNumber(),
			UserID:         o.UserID(),
			PreviousStatus: previous.String(),
			Status:         o.Status().String(),
			PaymentStatus:  string(o.PaymentStatus()),
			TrackingNumber: shipping.TrackingNumber,
			Carrier:        shipping.Carrier,
			Note:           entry.Note,
			UpdatedBy:      in.ActorID,
			OccurredAt:     now,
		}, now)
	})
	if err != nil {
		return err
	}

	c.recorder.RecordOrderStatusUpdate(status.String())
	slog.Info("Order status updated", "order_id", in.OrderID.String(), "status", status.String(), "actor_id", in.ActorID.String())
	return nil
}
