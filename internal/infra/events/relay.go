package events

import (
	"context"
	"log/slog"
	"time"

	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/shared"
)

type DeliveryRecorder interface {
	RecordOutboxDelivery(topic string, success bool)
}

// Relay moves pending outbox rows to every sink. Delivery is at least once:
// a row is marked published only after all sinks accepted it.
type Relay struct {
	uow         shared.UnitOfWork
	sinks       []Sink
	clock       clock.Clock
	recorder    DeliveryRecorder
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewRelay(uow shared.UnitOfWork, sinks []Sink, clock clock.Clock, recorder DeliveryRecorder, cfg config.EventsConfig) *Relay {
	return &Relay{
		uow:         uow,
		sinks:       sinks,
		clock:       clock,
		recorder:    recorder,
		interval:    cfg.RelayInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("Outbox relay started", "interval", r.interval, "sinks", len(r.sinks))
	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("Outbox relay flush failed", "error", err)
			}
		}
	}
}

// Flush delivers one batch and returns how many events were published.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	var published int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		pending, err := tx.Outbox().ClaimPending(ctx, r.batchSize)
		if err != nil {
			return err
		}

		for _, ev := range pending {
			if err := r.deliver(ctx, ev); err != nil {
				r.recorder.RecordOutboxDelivery(ev.Topic, false)
				slog.Warn("Outbox delivery failed",
					"event_id", ev.ID.String(), "topic", ev.Topic, "attempt", ev.Attempts+1, "error", err)
				if err := tx.Outbox().MarkAttemptFailed(ctx, ev.ID, err.Error(), r.maxAttempts); err != nil {
					return err
				}
				continue
			}
			r.recorder.RecordOutboxDelivery(ev.Topic, true)
			if err := tx.Outbox().MarkPublished(ctx, ev.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	return published, err
}

func (r *Relay) deliver(ctx context.Context, ev shared.OutboxEvent) error {
	var failed error
	for _, s := range r.sinks {
		if err := s.Publish(ctx, ev.Topic, ev.Payload); err != nil {
			failed = errs.Combine(failed, errs.Wrapf(err, "sink %s", s.Name()))
		}
	}
	return failed
}
