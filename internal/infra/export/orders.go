package export

import (
	"bytes"

	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/queries"

	"github.com/tealeg/xlsx"
)

const (
	OrdersSheet     = "Orders"
	timestampLayout = "2006-01-02 15:04:05"
)

var orderHeaders = []string{
	"Order Number", "Created At", "Customer", "Email", "Status", "Payment Status", "Payment Method",
	"Items", "Subtotal", "Shipping", "Tax", "Discount", "Total", "Coupon",
	"Shipping Method", "Tracking Number", "Carrier", "City", "Country", "Days Since Order", "Overdue",
}

// OrderWorkbook renders order summaries as a single-sheet xlsx workbook.
type OrderWorkbook struct{}

func NewOrderWorkbook() *OrderWorkbook {
	return &OrderWorkbook{}
}

func (w *OrderWorkbook) Render(orders []*queries.OrderSummary) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(OrdersSheet)
	if err != nil {
		return nil, errs.Wrap(err, "failed to add orders sheet")
	}

	header := sheet.AddRow()
	for _, h := range orderHeaders {
		header.AddCell().SetString(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.OrderNumber)
		row.AddCell().SetString(o.CreatedAt.UTC().Format(timestampLayout))
		row.AddCell().SetString(o.CustomerName)
		row.AddCell().SetString(o.CustomerEmail)
		row.AddCell().SetString(string(o.Status))
		row.AddCell().SetString(o.PaymentStatus)
		row.AddCell().SetString(o.PaymentMethod)
		row.AddCell().SetInt(o.ItemCount)
		row.AddCell().SetFloat(o.Pricing.Subtotal.InexactFloat64())
		row.AddCell().SetFloat(o.Pricing.Shipping.InexactFloat64())
		row.AddCell().SetFloat(o.Pricing.Tax.InexactFloat64())
		row.AddCell().SetFloat(o.Pricing.Discount.InexactFloat64())
		row.AddCell().SetFloat(o.Pricing.Total.InexactFloat64())
		row.AddCell().SetString(deref(o.CouponCode))
		row.AddCell().SetString(o.Shipping.Method)
		row.AddCell().SetString(deref(o.Shipping.TrackingNumber))
		row.AddCell().SetString(deref(o.Shipping.Carrier))
		row.AddCell().SetString(o.ShippingAddress.City)
		row.AddCell().SetString(o.ShippingAddress.Country)
		row.AddCell().SetInt(o.DaysSinceOrder)
		row.AddCell().SetBool(o.IsOverdue)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write orders workbook")
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
