package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TokenChecker reports whether a bearer token is the active session.
type TokenChecker interface {
	IsLoggedIn(token string) bool
}

// Session rejects tokens that are no longer the active session: a logout
// or a newer login elsewhere invalidates them even while the JWT itself is
// still unexpired. Must run after Auth, which stores the raw token.
func Session(checker TokenChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get("token").(string)
			if !checker.IsLoggedIn(token) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			return next(c)
		}
	}
}
