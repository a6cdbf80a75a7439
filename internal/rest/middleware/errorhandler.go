package middleware

import (
	ierr "github.com/orderpulse/orderpulse/internal/errors"
	"github.com/orderpulse/orderpulse/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware converts errors attached via c.Error into the
// standard error response body. Handlers attach errors and return; the
// mapping from marker to status code lives here, in one place.
func ErrorHandlerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		if status >= 500 {
			log.WithContext(c.Request.Context()).Errorw("request failed", "error", err)
		}

		c.JSON(status, ierr.NewErrorResponse(err))
	}
}
