package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"chronos.team/chronos/internal/metrics"
)

// Metrics records request durations per route template and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			metrics.RecordHTTPRequestDuration(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
				time.Since(start),
			)

			return err
		}
	}
}
