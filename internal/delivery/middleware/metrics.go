package middleware

import (
	"time"

	"dashboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests the router could not match, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes every request once the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" || route == "/*" {
			route = unmatchedRoute
		}

		m.metrics.ObserveHTTP(c.Request().Method, route, ResponseStatus(c, err), time.Since(start))

		return err
	}
}
