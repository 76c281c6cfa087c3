package dto

import (
	"time"

	"github.com/billtrack/billtrack/internal/types"
	"github.com/shopspring/decimal"
)

// ServiceStatusResponse is the per-service badge shown beside a client's
// service line.
type ServiceStatusResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	EffectivePrice decimal.Decimal     `json:"effective_price"`
	Currency       string              `json:"currency"`
	CurrencySymbol string              `json:"currency_symbol"`
	ExpirationDate *time.Time          `json:"expiration_date,omitempty"`
	NextDueDate    *time.Time          `json:"next_due_date,omitempty"`
	BillingStatus  types.BillingStatus `json:"billing_status"`
}

// ClientOverviewResponse is the client-level rollup consumed by the client
// detail view: one aggregate status, one monthly total, and the per-service
// badges the aggregate was reduced from.
type ClientOverviewResponse struct {
	ClientID           string                   `json:"client_id"`
	Name               string                   `json:"name"`
	BillingStatus      types.BillingStatus      `json:"billing_status"`
	ActiveMonthlyTotal decimal.Decimal          `json:"active_monthly_total"`
	Services           []*ServiceStatusResponse `json:"services"`
}
