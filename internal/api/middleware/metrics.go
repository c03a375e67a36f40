package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solucion-eventos/quotation-api/internal/api/metrics"
)

// Metrics records per-route request counts and latency. The path label uses
// the route pattern (c.Path()), not the raw URL, to keep cardinality bounded.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()
		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)

		return err
	}
}
