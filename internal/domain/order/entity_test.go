//go:build unit

package order_test

import (
	"testing"
	"time"

	"furnicraft/internal/domain/order"
	"furnicraft/internal/pkg/errs"
	"furnicraft/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	admin := uuid.New()

	t.Run("shipped records tracking details", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusProcessing).BuildDomain()
		eta := now.Add(72 * time.Hour)

		entry, err := o.ChangeStatus(order.StatusChange{
			Status:            order.StatusShipped,
			TrackingNumber:    "1Z999",
			Carrier:           "UPS",
			EstimatedDelivery: &eta,
			UpdatedBy:         admin,
		}, order.FreePolicy{}, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusShipped, o.Status())
		sh := o.Shipping()
		require.NotNil(t, sh.TrackingNumber)
		assert.Equal(t, "1Z999", *sh.TrackingNumber)
		require.NotNil(t, sh.Carrier)
		assert.Equal(t, "UPS", *sh.Carrier)
		assert.Equal(t, eta, *sh.EstimatedDelivery)
		assert.Equal(t, now, *sh.ShippedAt)
		assert.Nil(t, sh.DeliveredAt)

		assert.Equal(t, order.StatusShipped, entry.Status)
		assert.Equal(t, "Status changed to shipped", entry.Note)
		assert.Equal(t, now, entry.Timestamp)
		assert.Equal(t, admin, *entry.UpdatedBy)
	})

	t.Run("shipped without tracking keeps previous values", func(t *testing.T) {
		prev := "OLD-1"
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Shipping.TrackingNumber = &prev
		}).BuildDomain()

		_, err := o.ChangeStatus(order.StatusChange{Status: order.StatusShipped, UpdatedBy: admin}, order.FreePolicy{}, now)
		require.NoError(t, err)
		assert.Equal(t, "OLD-1", *o.Shipping().TrackingNumber)
		assert.Nil(t, o.Shipping().Carrier)
	})

	t.Run("delivered stamps delivery time", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusShipped).BuildDomain()

		entry, err := o.ChangeStatus(order.StatusChange{Status: order.StatusDelivered, Note: "Left at door", UpdatedBy: admin}, order.FreePolicy{}, now)
		require.NoError(t, err)
		assert.Equal(t, now, *o.Shipping().DeliveredAt)
		assert.Equal(t, "Left at door", entry.Note)
	})

	t.Run("cancelled refunds payment", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithPaymentStatus(order.PaymentPaid).BuildDomain()

		_, err := o.ChangeStatus(order.StatusChange{Status: order.StatusCancelled, UpdatedBy: admin}, order.FreePolicy{}, now)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildDomain()

		_, err := o.ChangeStatus(order.StatusChange{Status: "lost"}, order.FreePolicy{}, now)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("free policy allows backwards moves", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusDelivered).BuildDomain()

		_, err := o.ChangeStatus(order.StatusChange{Status: order.StatusPending, UpdatedBy: admin}, order.FreePolicy{}, now)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestStrictPolicy(t *testing.T) {
	cases := []struct {
		from, to order.Status
		allowed  bool
	}{
		{order.StatusPending, order.StatusConfirmed, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusShipped, false},
		{order.StatusConfirmed, order.StatusProcessing, true},
		{order.StatusProcessing, order.StatusShipped, true},
		{order.StatusShipped, order.StatusDelivered, true},
		{order.StatusShipped, order.StatusReturned, true},
		{order.StatusShipped, order.StatusCancelled, false},
		{order.StatusDelivered, order.StatusReturned, true},
		{order.StatusDelivered, order.StatusPending, false},
		{order.StatusCancelled, order.StatusPending, false},
		{order.StatusReturned, order.StatusDelivered, false},
		{order.StatusPending, order.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			err := order.StrictPolicy{}.Allow(tc.from, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidState))
		})
	}
}

func TestNewTransitionPolicy(t *testing.T) {
	p, err := order.NewTransitionPolicy("strict")
	require.NoError(t, err)
	assert.IsType(t, order.StrictPolicy{}, p)

	p, err = order.NewTransitionPolicy("")
	require.NoError(t, err)
	assert.IsType(t, order.FreePolicy{}, p)

	_, err = order.NewTransitionPolicy("chaotic")
	require.Error(t, err)
}

func TestInsights(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, order.DaysSince(now.Add(-60*time.Hour), now))
	assert.Equal(t, 0, order.DaysSince(now.Add(-time.Hour), now))

	past := now.Add(-time.Hour)
	future := now.Add(36 * time.Hour)
	assert.True(t, order.IsOverdue(order.StatusShipped, &past, now))
	assert.False(t, order.IsOverdue(order.StatusDelivered, &past, now))
	assert.False(t, order.IsOverdue(order.StatusShipped, &future, now))
	assert.False(t, order.IsOverdue(order.StatusShipped, nil, now))

	assert.Nil(t, order.EstimatedDeliveryDays(nil, now))
	assert.Equal(t, 2, *order.EstimatedDeliveryDays(&future, now))
}
