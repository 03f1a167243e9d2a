package middleware

import (
	"strconv"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records latency and count per route template, so /product/:id is
// one series rather than one per product.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
