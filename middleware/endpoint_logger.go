package middleware

import (
	"fmt"
	"time"

	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each API request as an activity event. It relies on
// util.SetEventLoggerDB having been called during startup so events are also
// persisted to the security_events table.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		util.LogAPIEvent(util.APIEvent{
			EventType: "endpoint_call",
			Severity:  "info",
			Message:   fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			SourceIP:  c.ClientIP(),
			Details: map[string]interface{}{
				"method":      c.Request.Method,
				"path":        c.FullPath(),
				"raw_path":    c.Request.URL.Path,
				"status":      status,
				"duration_ms": duration.Milliseconds(),
				"query":       c.Request.URL.RawQuery,
				"user_agent":  c.Request.UserAgent(),
			},
		})
	}
}
