//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"furnicraft/internal/domain/order"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/shared"
	"furnicraft/tests/common/builder"
	commandsmock "furnicraft/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	eta := fixedNow.Add(72 * time.Hour)

	testCases := []struct {
		name      string
		policy    order.TransitionPolicy
		stored    *builder.OrderBuilder
		input     func(o *order.Order) commands.UpdateOrderStatusInput
		setupMock func(m *txMocks, rec *commandsmock.MockStatusUpdateRecorder, o *order.Order)
		expectErr error
		expectIs  error
	}{
		{
			name:   "success: shipping records tracking and queues an event",
			policy: order.FreePolicy{},
			stored: builder.NewOrderBuilder().WithStatus(order.StatusProcessing),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{
					OrderID:           o.ID(),
					Status:            "shipped",
					TrackingNumber:    "1Z999",
					Carrier:           "UPS",
					EstimatedDelivery: &eta,
					ActorID:           actorID,
				}
			},
			setupMock: func(m *txMocks, rec *commandsmock.MockStatusUpdateRecorder, o *order.Order) {
				m.expectWithin()
				m.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
				m.orders.EXPECT().UpdateStatus(gomock.Any(), o).DoAndReturn(func(_ context.Context, updated *order.Order) error {
					assert.Equal(t, order.StatusShipped, updated.Status())
					require.NotNil(t, updated.Shipping().TrackingNumber)
					assert.Equal(t, "1Z999", *updated.Shipping().TrackingNumber)
					assert.Equal(t, fixedNow, *updated.Shipping().ShippedAt)
					return nil
				})
				m.orders.EXPECT().AppendTimeline(gomock.Any(), o.ID(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, entry order.TimelineEntry) error {
						assert.Equal(t, "Status changed to shipped", entry.Note)
						assert.Equal(t, actorID, *entry.UpdatedBy)
						return nil
					})
				m.outbox.EXPECT().Enqueue(gomock.Any(), shared.TopicOrderStatusChanged, gomock.Any(), fixedNow).DoAndReturn(
					func(_ context.Context, _ string, payload any, _ time.Time) error {
						evt, ok := payload.(shared.OrderStatusChanged)
						require.True(t, ok)
						assert.Equal(t, "processing", evt.PreviousStatus)
						assert.Equal(t, "shipped", evt.Status)
						assert.Equal(t, o.OrderNumber(), evt.OrderNumber)
						assert.Equal(t, actorID, evt.UpdatedBy)
						return nil
					})
				rec.EXPECT().RecordOrderStatusUpdate("shipped")
			},
		},
		{
			name:   "success: cancelling refunds the payment",
			policy: order.FreePolicy{},
			stored: builder.NewOrderBuilder(),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{OrderID: o.ID(), Status: "cancelled", Note: "customer request", ActorID: actorID}
			},
			setupMock: func(m *txMocks, rec *commandsmock.MockStatusUpdateRecorder, o *order.Order) {
				m.expectWithin()
				m.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
				m.orders.EXPECT().UpdateStatus(gomock.Any(), o).DoAndReturn(func(_ context.Context, updated *order.Order) error {
					assert.Equal(t, order.PaymentRefunded, updated.PaymentStatus())
					return nil
				})
				m.orders.EXPECT().AppendTimeline(gomock.Any(), o.ID(), gomock.Any()).Return(nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), shared.TopicOrderStatusChanged, gomock.Any(), fixedNow).Return(nil)
				rec.EXPECT().RecordOrderStatusUpdate("cancelled")
			},
		},
		{
			name:   "error: missing status",
			policy: order.FreePolicy{},
			stored: builder.NewOrderBuilder(),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{OrderID: o.ID()}
			},
			expectErr: order.ErrMissingFields,
		},
		{
			name:   "error: unknown order wins over an invalid status",
			policy: order.FreePolicy{},
			stored: builder.NewOrderBuilder(),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{OrderID: o.ID(), Status: "teleported"}
			},
			setupMock: func(m *txMocks, _ *commandsmock.MockStatusUpdateRecorder, o *order.Order) {
				m.expectWithin()
				m.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(nil, notFoundErr())
			},
			expectErr: order.ErrNotFound,
		},
		{
			name:   "error: invalid status on an existing order",
			policy: order.FreePolicy{},
			stored: builder.NewOrderBuilder(),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{OrderID: o.ID(), Status: "teleported"}
			},
			setupMock: func(m *txMocks, _ *commandsmock.MockStatusUpdateRecorder, o *order.Order) {
				m.expectWithin()
				m.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
			},
			expectErr: order.ErrInvalidStatus,
		},
		{
			name:   "error: strict policy rejects moving backwards",
			policy: order.StrictPolicy{},
			stored: builder.NewOrderBuilder().WithStatus(order.StatusDelivered),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{OrderID: o.ID(), Status: "pending"}
			},
			setupMock: func(m *txMocks, _ *commandsmock.MockStatusUpdateRecorder, o *order.Order) {
				m.expectWithin()
				m.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
			},
			expectIs: errs.ErrInvalidState,
		},
		{
			name:   "error: outbox failure rolls back and records nothing",
			policy: order.FreePolicy{},
			stored: builder.NewOrderBuilder(),
			input: func(o *order.Order) commands.UpdateOrderStatusInput {
				return commands.UpdateOrderStatusInput{OrderID: o.ID(), Status: "confirmed"}
			},
			setupMock: func(m *txMocks, _ *commandsmock.MockStatusUpdateRecorder, o *order.Order) {
				m.expectWithin()
				m.orders.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
				m.orders.EXPECT().UpdateStatus(gomock.Any(), o).Return(nil)
				m.orders.EXPECT().AppendTimeline(gomock.Any(), o.ID(), gomock.Any()).Return(nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr())
			},
			expectIs: dbErrSentinel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			rec := commandsmock.NewMockStatusUpdateRecorder(ctrl)
			stored := tc.stored.BuildDomain()
			if tc.setupMock != nil {
				tc.setupMock(m, rec, stored)
			}
			cmds := commands.NewOrderCommands(m.uow, tc.policy, clock.NewMockClock(fixedNow), rec)

			err := cmds.UpdateStatus(ctx, tc.input(stored))

			switch {
			case tc.expectErr != nil:
				require.ErrorIs(t, err, tc.expectErr)
			case tc.expectIs != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectIs), "unexpected error: %v", err)
			default:
				require.NoError(t, err)
			}
		})
	}
}
