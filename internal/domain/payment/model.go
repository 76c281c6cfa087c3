package payment

import (
	"time"

	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/shopspring/decimal"
)

// Payment represents a settlement event tied to a client and optionally to
// one of its services. Payments are historical facts and are never mutated
// to reflect later status changes; billing status is always recomputed from
// the service's expiration date, not from the payment log.
type Payment struct {
	// ID is the unique identifier for this payment
	ID string `db:"id" json:"id"`

	// ReceiptNumber is the short human-facing identifier printed on receipts
	ReceiptNumber string `db:"receipt_number" json:"receipt_number"`

	// ClientID identifies the client this payment belongs to
	ClientID string `db:"client_id" json:"client_id"`

	// ServiceID identifies the service this payment covers (optional)
	ServiceID *string `db:"service_id" json:"service_id,omitempty"`

	// Amount is the settled value in the given currency
	Amount decimal.Decimal `db:"amount" json:"amount"`

	// Currency is a three-letter ISO code (USD, EUR, MXN, etc.)
	Currency string `db:"currency" json:"currency"`

	// PaymentDate is the day the payment was made
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`

	// MonthsCovered is the number of calendar months this payment covers
	MonthsCovered int `db:"months_covered" json:"months_covered"`

	// PeriodStart and PeriodEnd are the covered date range derived from
	// PaymentDate and MonthsCovered when the payment is recorded
	PeriodStart time.Time `db:"period_start" json:"period_start"`
	PeriodEnd   time.Time `db:"period_end" json:"period_end"`

	// PaymentStatus is the settlement state of this payment
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`

	types.BaseModel
}

// Validate validates the payment
func (p *Payment) Validate() error {
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if p.ClientID == "" {
		return ierr.NewError("invalid client id").
			WithHint("Payment must belong to a client").
			Mark(ierr.ErrValidation)
	}
	if p.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	if p.MonthsCovered < 1 {
		return ierr.NewError("invalid months covered").
			WithHint("Months covered must be at least 1").
			Mark(ierr.ErrValidation)
	}
	if err := p.PaymentStatus.Validate(); err != nil {
		return err
	}
	return nil
}

// IsSettled reports whether this payment counts toward realized income.
func (p *Payment) IsSettled() bool {
	return p.PaymentStatus.IsSettled()
}
