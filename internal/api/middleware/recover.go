package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/ethanbaker/notes-summarizer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Recover turns panics into a generic 500 response and logs them
func Recover(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		GetLogger(c, log).Error().
			Interface("error", err).
			Str("stack", string(debug.Stack())).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("panic recovered")

		c.AbortWithStatusJSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Internal server error").AsGinResponse())
	})
}
