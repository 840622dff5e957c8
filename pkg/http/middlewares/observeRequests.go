package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/okteto/attendees-function/pkg/metrics"
)

func ObserveRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		m.Observe(c.Request.Method, c.Writer.Status())
	}
}
