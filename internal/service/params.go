package service

import (
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/domain/order"
	"github.com/orderpulse/orderpulse/internal/domain/report"
	"github.com/orderpulse/orderpulse/internal/domain/user"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/postgres"
)

// ServiceParams bundles the dependencies shared by all services.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	StatsRepo report.StatsRepository
	UserRepo  user.Repository
	OrderRepo order.Repository
}
