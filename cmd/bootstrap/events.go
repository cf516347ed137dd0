package bootstrap

import (
	"context"
	"log/slog"

	"furnicraft/internal/infra/events"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/metrics"
	"furnicraft/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewHub,
		NewSinks,
		NewRelay,
	),
	fx.Invoke(func(*events.Relay) {}),
)

func NewHub(lc fx.Lifecycle, m *metrics.Metrics) *events.Hub {
	hub := events.NewHub(m)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return hub
}

// NewSinks always includes the websocket hub; RabbitMQ joins when AMQP_URL is set.
func NewSinks(lc fx.Lifecycle, cfg config.Config, hub *events.Hub) ([]events.Sink, error) {
	sinks := []events.Sink{hub}
	if cfg.Events.AMQPURL == "" {
		slog.Info("AMQP_URL not set; order events go to the websocket feed only")
		return sinks, nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return append(sinks, publisher), nil
}

func NewRelay(lc fx.Lifecycle, uow shared.UnitOfWork, sinks []events.Sink, clk clock.Clock, m *metrics.Metrics, cfg config.Config) *events.Relay {
	relay := events.NewRelay(uow, sinks, clk, m, cfg.Events)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return relay
}
