package rest

import (
	"net/http"

	v1 "github.com/orderpulse/orderpulse/internal/api/v1"
	"github.com/orderpulse/orderpulse/internal/config"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/rest/middleware"
	"github.com/orderpulse/orderpulse/internal/types"

	"github.com/gin-gonic/gin"
)

// Handlers groups the API handlers wired into the router.
type Handlers struct {
	Report *v1.ReportHandler
}

// NewRouter builds the gin engine with the service's middleware chain and
// routes.
func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode == types.RunModeProd {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = log.GetGinLogger()

	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandlerMiddleware(log),
		gin.Recovery(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/v1")
	{
		reports := apiV1.Group("/reports")
		{
			reports.GET("/user-orders", handlers.Report.GetUserOrdersReport)
		}
	}

	return router
}
