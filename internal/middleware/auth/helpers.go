package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ctxUserID).(uuid.UUID)
	return id, ok
}

func Role(c echo.Context) tokens.Role {
	if role, ok := c.Get(ctxRole).(tokens.Role); ok {
		return role
	}
	return ""
}

func IsAdmin(c echo.Context) bool {
	return Role(c) == tokens.RoleAdmin
}

func Banned(c echo.Context) bool {
	banned, _ := c.Get(ctxBanned).(bool)
	return banned
}
