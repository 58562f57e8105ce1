package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
	ctxBanned = "banned"
)

// RequireLogin validates the bearer token and stores identity and role on
// the echo context for the handlers downstream.
func RequireLogin(t *tokens.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := t.ParseAccessToken(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}
			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			c.Set(ctxUserID, userID)
			c.Set(ctxRole, claims.Role)
			c.Set(ctxBanned, claims.Banned)
			return next(c)
		}
	}
}
