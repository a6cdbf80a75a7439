package v1

import (
	"net/http"
	"time"

	"github.com/orderpulse/orderpulse/internal/api/dto"
	"github.com/orderpulse/orderpulse/internal/cache"
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"
	"github.com/orderpulse/orderpulse/internal/service"
	"github.com/orderpulse/orderpulse/internal/types"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
	cache         cache.Cache
	cacheTTL      time.Duration
	logger        *logger.Logger
}

func NewReportHandler(
	reportService service.ReportService,
	reportCache cache.Cache,
	cacheTTL time.Duration,
	logger *logger.Logger,
) *ReportHandler {
	if cacheTTL <= 0 {
		cacheTTL = cache.ExpiryDefaultInMemory
	}
	return &ReportHandler{
		reportService: reportService,
		cache:         reportCache,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// GetUserOrdersReport handles GET /v1/reports/user-orders.
func (h *ReportHandler) GetUserOrdersReport(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid report query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, req.CacheKey()); ok {
			if resp, ok := cached.(*dto.PaginatedReportResponse); ok {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	rows, err := h.reportService.GenerateUserOrdersReport(ctx, &req)
	if err != nil {
		h.logger.Errorw("failed to generate user orders report", "error", err)
		c.Error(err)
		return
	}

	resp, err := dto.PaginateReportRows(rows, req.GetPage(), types.DefaultPageSize)
	if err != nil {
		h.logger.Errorw("failed to paginate user orders report", "error", err)
		c.Error(err)
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, req.CacheKey(), resp, h.cacheTTL)
	}

	c.JSON(http.StatusOK, resp)
}
