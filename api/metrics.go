package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeonSantana7/forms/monitoring"
)

// requestMetrics records per-route duration and status counters. Unmatched
// paths share one label to keep the cardinality bounded.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		monitoring.HTTPDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		monitoring.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
