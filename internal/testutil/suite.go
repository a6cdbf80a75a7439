package testutil

import (
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/logger"

	"github.com/stretchr/testify/suite"
)

// Stores groups the in-memory repositories available to service tests.
type Stores struct {
	ReportStore *InMemoryReportStore
}

// BaseServiceTestSuite provides shared setup for service-level suites.
type BaseServiceTestSuite struct {
	suite.Suite
	cfg    *config.Configuration
	log    *logger.Logger
	stores Stores
}

// SetupTest initializes fresh stores for every test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.cfg = config.GetDefaultConfig()
	log, err := logger.NewLogger(s.cfg)
	s.Require().NoError(err)
	s.log = log
	s.stores = Stores{
		ReportStore: NewInMemoryReportStore(),
	}
}

// TearDownTest clears all stores.
func (s *BaseServiceTestSuite) TearDownTest() {
	if s.stores.ReportStore != nil {
		s.stores.ReportStore.Clear()
	}
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}
