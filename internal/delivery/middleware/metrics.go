package middleware

import (
	"strconv"
	"time"

	"comerciojusto/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	collectors *metrics.Collectors
}

// NewMetricsMiddleware creates the middleware. A nil collector set disables it.
func NewMetricsMiddleware(collectors *metrics.Collectors) *MetricsMiddleware {
	return &MetricsMiddleware{collectors: collectors}
}

// Handle observes the request after the handler and the error handler ran.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if m.collectors == nil {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the status we are about to record.
			c.Error(err)
		}

		// Route templates keep label cardinality bounded; unmatched paths share one label.
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.collectors.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		m.collectors.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}
