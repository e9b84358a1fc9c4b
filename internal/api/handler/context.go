package handler

import "github.com/labstack/echo/v4"

// ctxToken extracts the raw bearer token injected by the Auth middleware.
// It is empty on routes the middleware does not guard.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
