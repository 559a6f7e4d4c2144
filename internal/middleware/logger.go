package middleware

import (
	"time"

	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/logging"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request. The logger drops the line unless
// request logging is switched on in its config.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		logging.GetGlobalLogger().LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
