package middleware

import (
	"github.com/labstack/echo/v4"
)

const ActorHeader = "X-Actor-ID"

// Actor threads the acting user's identity from the request header into the
// echo context. Authorization itself happens in the services, against the
// stored role, never against ambient state.
func Actor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := c.Request().Header.Get(ActorHeader); id != "" {
				c.Set("actor_id", id)
			}
			return next(c)
		}
	}
}
