package order

import "furnicraft/internal/pkg/errs"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the order still awaits fulfilment.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusProcessing
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentFailed            PaymentStatus = "failed"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded, PaymentPartiallyRefunded:
		return true
	default:
		return false
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	p := PaymentStatus(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return p, nil
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

var (
	ErrMissingFields        = errs.Kinded(errs.ErrInvalidArgument, "Order ID and status are required")
	ErrInvalidStatus        = errs.Kinded(errs.ErrInvalidArgument, "Invalid status")
	ErrInvalidPaymentStatus = errs.Kinded(errs.ErrInvalidArgument, "Invalid payment status")
	ErrNotFound             = errs.Kinded(errs.ErrNotFound, "Order not found")
)
