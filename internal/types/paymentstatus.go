package types

import (
	"strings"

	ierr "github.com/billtrack/billtrack/internal/errors"
)

// PaymentStatus represents the settlement state of a payment.
// The canonical tokens are English; the legacy Spanish tokens that still
// exist in historical rows (PAGADO, PENDIENTE, VENCIDO) are accepted only
// through ParsePaymentStatus and normalized at the ingestion boundary, so
// everything past that boundary sees a single vocabulary.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	allowed := []PaymentStatus{
		PaymentStatusPaid,
		PaymentStatusPending,
		PaymentStatusFailed,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewError("invalid payment status").
		WithHintf("Payment status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// IsSettled reports whether the payment counts toward realized income.
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusPaid
}

// ParsePaymentStatus normalizes a raw status token, including the legacy
// Spanish spellings, into the canonical enum.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PAID", "PAGADO":
		return PaymentStatusPaid, nil
	case "PENDING", "PENDIENTE":
		return PaymentStatusPending, nil
	case "FAILED", "VENCIDO":
		return PaymentStatusFailed, nil
	default:
		return "", ierr.NewError("unknown payment status token").
			WithHintf("Cannot map %q to a payment status", raw).
			Mark(ierr.ErrValidation)
	}
}
