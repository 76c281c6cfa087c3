package service

import (
	"time"

	ierr "github.com/billtrack/billtrack/internal/errors"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/shopspring/decimal"
)

// Service represents one subscription line owned by a client. Its billing
// status is never persisted: it is always a read-time projection over
// ExpirationDate, PrepaidUntil and the caller's captured "now".
type Service struct {
	// ID is the unique identifier for the service
	ID string `db:"id" json:"id"`

	// ClientID identifies the client that owns this service
	ClientID string `db:"client_id" json:"client_id"`

	// Name is the display name of the service
	Name string `db:"name" json:"name"`

	// Cost is the base monthly price of the service
	Cost decimal.Decimal `db:"cost" json:"cost"`

	// SpecialPrice, when set, supersedes Cost for all billing math
	SpecialPrice *decimal.Decimal `db:"special_price" json:"special_price,omitempty"`

	// Currency is a three-letter ISO code (USD, EUR, MXN, etc.)
	Currency string `db:"currency" json:"currency"`

	// ExpirationDate is the day the current billing period runs out.
	// A nil expiration is treated as maximally overdue, never as "no status".
	ExpirationDate *time.Time `db:"expiration_date" json:"expiration_date,omitempty"`

	// PrepaidUntil, when set and not yet passed, overrides the expiration
	// date math entirely and reports the service as paid
	PrepaidUntil *time.Time `db:"prepaid_until" json:"prepaid_until,omitempty"`

	// RenewalDay is the day of month (1..31) the service renews on
	RenewalDay int `db:"renewal_day" json:"renewal_day"`

	types.BaseModel
}

// EffectivePrice returns the price used for all billing math:
// the special price when present, the base cost otherwise.
func (s *Service) EffectivePrice() decimal.Decimal {
	if s.SpecialPrice != nil {
		return *s.SpecialPrice
	}
	return s.Cost
}

// IsActive reports whether the service participates in billing aggregation.
func (s *Service) IsActive() bool {
	return s.Status == types.StatusActive
}

// Validate performs basic validation on the service model
func (s *Service) Validate() error {
	if s.ClientID == "" {
		return ierr.NewError("service client id is required").
			WithHint("Service must belong to a client").
			Mark(ierr.ErrValidation)
	}
	if s.Cost.IsNegative() {
		return ierr.NewError("invalid cost").
			WithHint("Cost cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if s.SpecialPrice != nil && s.SpecialPrice.IsNegative() {
		return ierr.NewError("invalid special price").
			WithHint("Special price cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if s.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	if s.RenewalDay != 0 && (s.RenewalDay < 1 || s.RenewalDay > 31) {
		return ierr.NewError("invalid renewal day").
			WithHint("Renewal day must be between 1 and 31").
			Mark(ierr.ErrValidation)
	}
	return nil
}
