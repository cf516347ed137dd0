//go:build unit

package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"furnicraft/internal/infra/events"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/usecase/shared"
	sharedmock "furnicraft/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeSink struct {
	name string
	err  error

	mu       sync.Mutex
	received []string
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Publish(_ context.Context, topic string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, topic+":"+string(payload))
	return f.err
}

type deliveryLog struct {
	mu      sync.Mutex
	results map[bool]int
}

func (d *deliveryLog) RecordOutboxDelivery(_ string, success bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.results == nil {
		d.results = map[bool]int{}
	}
	d.results[success]++
}

func newOutboxUoW(ctrl *gomock.Controller) (*sharedmock.MockUnitOfWork, *sharedmock.MockOutboxRepository) {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	outbox := sharedmock.NewMockOutboxRepository(ctrl)
	tx.EXPECT().Outbox().Return(outbox).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	return uow, outbox
}

func relayConfig() config.EventsConfig {
	return config.EventsConfig{RelayInterval: 10 * time.Millisecond, BatchSize: 2, MaxAttempts: 3}
}

func TestRelay_Flush(t *testing.T) {
	ev1 := shared.OutboxEvent{ID: uuid.New(), Topic: shared.TopicOrderStatusChanged, Payload: []byte(`{"n":1}`)}
	ev2 := shared.OutboxEvent{ID: uuid.New(), Topic: shared.TopicOrderStatusChanged, Payload: []byte(`{"n":2}`), Attempts: 2}

	t.Run("success: every sink receives the batch and rows are marked published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, outbox := newOutboxUoW(ctrl)
		outbox.EXPECT().ClaimPending(gomock.Any(), 2).Return([]shared.OutboxEvent{ev1, ev2}, nil)
		outbox.EXPECT().MarkPublished(gomock.Any(), ev1.ID, fixedNow).Return(nil)
		outbox.EXPECT().MarkPublished(gomock.Any(), ev2.ID, fixedNow).Return(nil)

		ws, mq := &fakeSink{name: "websocket"}, &fakeSink{name: "amqp"}
		log := &deliveryLog{}
		relay := events.NewRelay(uow, []events.Sink{ws, mq}, clock.NewMockClock(fixedNow), log, relayConfig())

		n, err := relay.Flush(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, ws.received, 2)
		assert.Len(t, mq.received, 2)
		assert.Equal(t, 2, log.results[true])
	})

	t.Run("failure: one failing sink keeps the event pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, outbox := newOutboxUoW(ctrl)
		outbox.EXPECT().ClaimPending(gomock.Any(), 2).Return([]shared.OutboxEvent{ev1}, nil)
		outbox.EXPECT().MarkAttemptFailed(gomock.Any(), ev1.ID, gomock.Any(), 3).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, reason string, _ int) error {
				assert.Contains(t, reason, "sink amqp")
				return nil
			})

		ws, mq := &fakeSink{name: "websocket"}, &fakeSink{name: "amqp", err: errors.New("connection refused")}
		log := &deliveryLog{}
		relay := events.NewRelay(uow, []events.Sink{ws, mq}, clock.NewMockClock(fixedNow), log, relayConfig())

		n, err := relay.Flush(context.Background())

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Len(t, ws.received, 1, "healthy sinks still get the event")
		assert.Equal(t, 1, log.results[false])
	})

	t.Run("error: claim failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow, outbox := newOutboxUoW(ctrl)
		outbox.EXPECT().ClaimPending(gomock.Any(), 2).Return(nil, errors.New("lock timeout"))

		relay := events.NewRelay(uow, nil, clock.NewMockClock(fixedNow), &deliveryLog{}, relayConfig())

		n, err := relay.Flush(context.Background())

		require.Error(t, err)
		assert.Zero(t, n)
	})
}

func TestRelay_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow, outbox := newOutboxUoW(ctrl)
	outbox.EXPECT().ClaimPending(gomock.Any(), 2).Return(nil, nil).AnyTimes()
	relay := events.NewRelay(uow, nil, clock.NewMockClock(fixedNow), &deliveryLog{}, relayConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancellation")
	}
}
