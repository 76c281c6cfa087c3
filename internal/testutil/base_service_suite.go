package testutil

import (
	"context"
	"time"

	"github.com/billtrack/billtrack/internal/billing"
	"github.com/billtrack/billtrack/internal/config"
	"github.com/billtrack/billtrack/internal/domain/client"
	"github.com/billtrack/billtrack/internal/domain/payment"
	"github.com/billtrack/billtrack/internal/domain/service"
	"github.com/billtrack/billtrack/internal/logger"
	"github.com/billtrack/billtrack/internal/types"
	"github.com/billtrack/billtrack/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	ClientRepo  client.Repository
	ServiceRepo service.Repository
	PaymentRepo payment.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
	clock  billing.Clock
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
	s.clock = billing.NewFixedClock(s.now)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		ClientRepo:  NewInMemoryClientStore(),
		ServiceRepo: NewInMemoryServiceStore(),
		PaymentRepo: NewInMemoryPaymentStore(),
	}
}

// ClearStores clears all the in-memory stores
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.ClientRepo.(*InMemoryClientStore).Clear()
	s.stores.ServiceRepo.(*InMemoryServiceStore).Clear()
	s.stores.PaymentRepo.(*InMemoryPaymentStore).Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

func (s *BaseServiceTestSuite) GetClock() billing.Clock {
	return s.clock
}

// SetNow freezes the suite clock at the given instant
func (s *BaseServiceTestSuite) SetNow(t time.Time) {
	s.now = t
	s.clock = billing.NewFixedClock(t)
}
