package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderAuth is an optional middleware for non-browser API clients. When
// enabled it requires an X-Farm-Uid header (or the uid cookie) on every
// request; when disabled it passes through and DevLogin applies instead.
func HeaderAuth(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Farm-Uid")
			if uid == "" {
				if ck, err := c.Cookie(uidCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing uid"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
