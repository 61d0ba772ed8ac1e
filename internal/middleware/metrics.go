package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"region-directory/internal/metrics"
)

// unmatchedRoute labels requests that matched no route, keeping label cardinality bounded
const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
