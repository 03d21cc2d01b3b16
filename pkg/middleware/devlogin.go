package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "FARM_UID"

// DevLogin stamps every request with a uid, minting a default one for fresh
// browsers. Real authentication is owned by the deployment's edge; this keeps
// local development friction-free.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
				}
				c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
