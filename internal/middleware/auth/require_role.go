package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

// Requires is the single authorization gate: role checks are not repeated
// inside handlers.
func Requires(role tokens.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Role(c) != role {
				return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
			}
			return next(c)
		}
	}
}

// RequireNotBanned blocks banned accounts from mutating endpoints.
func RequireNotBanned() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Banned(c) {
				return echo.NewHTTPError(http.StatusForbidden, "account is banned")
			}
			return next(c)
		}
	}
}
