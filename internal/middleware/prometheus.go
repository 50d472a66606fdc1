package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/algowalk/steptrace/internal/metrics"
)

// Prometheus records request duration and count for every handled request.
// The path label uses the route template (e.g. /api/v1/grids/:id) rather than
// the raw URL so cardinality stays bounded.
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
