//go:build unit

package export_test

import (
	"testing"
	"time"

	"furnicraft/internal/infra/export"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestOrderWorkbookRender(t *testing.T) {
	tracking := "TRK-1"
	orders := []*queries.OrderSummary{
		{
			ID:            uuid.New(),
			OrderNumber:   "ORD-1001",
			Status:        "shipped",
			PaymentStatus: "paid",
			PaymentMethod: "credit_card",
			Pricing: queries.PricingView{
				Subtotal: decimal.RequireFromString("100.00"),
				Total:    decimal.RequireFromString("112.50"),
			},
			Shipping:        queries.ShippingView{Method: "express", TrackingNumber: &tracking},
			ShippingAddress: queries.AddressView{City: "Austin", Country: "US"},
			ItemCount:       3,
			CustomerName:    "Jane Doe",
			CustomerEmail:   "jane@example.com",
			CreatedAt:       time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
			DaysSinceOrder:  4,
		},
		{
			OrderNumber: "ORD-1002",
			Status:      "pending",
			CreatedAt:   time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
		},
	}

	content, err := export.NewOrderWorkbook().Render(orders)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(content)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, export.OrdersSheet, sheet.Name)
	require.Len(t, sheet.Rows, 3)

	header := sheet.Rows[0].Cells
	assert.Equal(t, "Order Number", header[0].Value)
	assert.Equal(t, "Total", header[12].Value)

	first := sheet.Rows[1].Cells
	assert.Equal(t, "ORD-1001", first[0].Value)
	assert.Equal(t, "2024-05-01 10:30:00", first[1].Value)
	assert.Equal(t, "Jane Doe", first[2].Value)
	assert.Equal(t, "shipped", first[4].Value)
	assert.Equal(t, "3", first[7].Value)
	assert.Equal(t, "112.5", first[12].Value)
	assert.Equal(t, "TRK-1", first[15].Value)
	assert.Equal(t, "Austin", first[17].Value)

	second := sheet.Rows[2].Cells
	assert.Equal(t, "ORD-1002", second[0].Value)
}

func TestOrderWorkbookRenderEmpty(t *testing.T) {
	content, err := export.NewOrderWorkbook().Render(nil)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(content)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
