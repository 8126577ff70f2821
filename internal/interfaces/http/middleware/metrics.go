package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"film-forge-api/pkg/metrics"
)

// Metrics records request count, latency and sizes per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		start := time.Now()

		if reqSize := c.Request.ContentLength; reqSize > 0 {
			metrics.HTTPRequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
		}

		c.Next()

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if respSize := c.Writer.Size(); respSize > 0 {
			metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
		}
	}
}
