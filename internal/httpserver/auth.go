package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	mwauth "github.com/ReemOthm/home-decor-backend/internal/middleware/auth"
	"github.com/ReemOthm/home-decor-backend/internal/service"
	"github.com/ReemOthm/home-decor-backend/internal/transport"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return apperr.BadRequest("email and password are required")
	}

	result, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{
		TokenResponse: transport.TokenResponse{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
		},
		User: transport.ViewOfUser(result.User),
	})
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if req.AccessToken == "" || req.RefreshToken == "" {
		return apperr.BadRequest("access_token and refresh_token are required")
	}

	pair, err := h.Auth.Refresh(c.Request().Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Revoke(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	if err := h.Auth.Revoke(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
