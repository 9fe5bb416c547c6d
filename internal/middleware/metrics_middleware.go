package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/pkg/metrics"
)

// Metrics records request count and latency per route. The route template
// (e.g. /api/v1/formations/:id) is used as the path label so parameterized
// requests do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
