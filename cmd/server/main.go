package main

import (
	"context"
	"net/http"

	v1 "github.com/orderpulse/orderpulse/internal/api/v1"
	"github.com/orderpulse/orderpulse/internal/cache"
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/domain/order"
	"github.com/orderpulse/orderpulse/internal/domain/report"
	"github.com/orderpulse/orderpulse/internal/domain/user"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/postgres"
	pgrepo "github.com/orderpulse/orderpulse/internal/repository/postgres"
	"github.com/orderpulse/orderpulse/internal/rest"
	"github.com/orderpulse/orderpulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			postgres.NewClient,
			pgrepo.NewReportStatsRepository,
			pgrepo.NewUserRepository,
			pgrepo.NewOrderRepository,
			newServiceParams,
			service.NewReportService,
			newReportHandler,
			newRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func newServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	db postgres.IClient,
	statsRepo report.StatsRepository,
	userRepo user.Repository,
	orderRepo order.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:    log,
		Config:    cfg,
		DB:        db,
		StatsRepo: statsRepo,
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
	}
}

func newReportHandler(
	reportService service.ReportService,
	cfg *config.Configuration,
	log *logger.Logger,
) *v1.ReportHandler {
	var reportCache cache.Cache
	if cfg.Cache.Enabled {
		reportCache = cache.NewInMemoryCache()
	}
	return v1.NewReportHandler(reportService, reportCache, cfg.Cache.TTL, log)
}

func newRouter(handler *v1.ReportHandler, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	return rest.NewRouter(rest.Handlers{Report: handler}, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}
