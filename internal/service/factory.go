package service

import (
	"github.com/billtrack/billtrack/internal/billing"
	"github.com/billtrack/billtrack/internal/config"
	"github.com/billtrack/billtrack/internal/domain/client"
	"github.com/billtrack/billtrack/internal/domain/payment"
	domainservice "github.com/billtrack/billtrack/internal/domain/service"
	"github.com/billtrack/billtrack/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Clock  billing.Clock

	// Repositories
	ClientRepo  client.Repository
	ServiceRepo domainservice.Repository
	PaymentRepo payment.Repository
}

// graceDays returns the configured grace window, falling back to the
// product default when config is absent.
func (p ServiceParams) graceDays() int {
	if p.Config != nil {
		return p.Config.Billing.GracePeriodDays
	}
	return billingDefaultGraceDays
}

func (p ServiceParams) upcomingDays() int {
	if p.Config != nil {
		return p.Config.Billing.UpcomingWindowDays
	}
	return billingDefaultUpcomingDays
}
