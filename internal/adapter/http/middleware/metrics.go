package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/travel-sample/travel-sample-api/internal/infrastructure/metrics"
)

// unmatchedRoute labels requests that did not match a registered route,
// keeping arbitrary paths out of the metric labels.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count and latency per route.
// It must run outside RequestLogger so the response status is final.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}
			metrics.ObserveHTTP(route, c.Request().Method, c.Response().Status, time.Since(start))

			return err
		}
	}
}
