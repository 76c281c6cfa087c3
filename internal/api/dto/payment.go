package dto

import (
	"time"

	"github.com/billtrack/billtrack/internal/domain/payment"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is the write-path request for posting a payment
// against a client's service.
type RecordPaymentRequest struct {
	ClientID      string          `json:"client_id" validate:"required"`
	ServiceID     string          `json:"service_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Currency      string          `json:"currency" validate:"required,len=3"`
	PaymentDate   time.Time       `json:"payment_date" validate:"required"`
	MonthsCovered int             `json:"months_covered" validate:"required,min=1"`
	// PaymentStatus accepts the canonical tokens as well as the legacy
	// Spanish spellings; it is normalized before anything else happens.
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// PaymentResponse echoes the recorded payment, the covered period and the
// service's advanced expiration date.
type PaymentResponse struct {
	ID                string              `json:"id"`
	ReceiptNumber     string              `json:"receipt_number"`
	ClientID          string              `json:"client_id"`
	ServiceID         *string             `json:"service_id,omitempty"`
	Amount            decimal.Decimal     `json:"amount"`
	Currency          string              `json:"currency"`
	PaymentDate       time.Time           `json:"payment_date"`
	MonthsCovered     int                 `json:"months_covered"`
	PeriodStart       time.Time           `json:"period_start"`
	PeriodEnd         time.Time           `json:"period_end"`
	PaymentStatus     types.PaymentStatus `json:"payment_status"`
	NewExpirationDate *time.Time          `json:"new_expiration_date,omitempty"`
}

// NewPaymentResponse builds a response from a recorded payment.
func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		ReceiptNumber: p.ReceiptNumber,
		ClientID:      p.ClientID,
		ServiceID:     p.ServiceID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentDate:   p.PaymentDate,
		MonthsCovered: p.MonthsCovered,
		PeriodStart:   p.PeriodStart,
		PeriodEnd:     p.PeriodEnd,
		PaymentStatus: p.PaymentStatus,
	}
}
