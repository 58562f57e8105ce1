package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	mwauth "github.com/ReemOthm/home-decor-backend/internal/middleware/auth"
	"github.com/ReemOthm/home-decor-backend/internal/service"
	"github.com/ReemOthm/home-decor-backend/internal/transport"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

type UserHandler struct {
	Users *service.UserService
}

func (h *UserHandler) Signup(c echo.Context) error {
	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, err := h.Users.Signup(c.Request().Context(), service.SignupInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, transport.ViewOfUser(user))
}

func (h *UserHandler) List(c echo.Context) error {
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	users, meta, err := h.Users.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data": transport.ViewOfUsers(users),
		"meta": meta,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid user id")
	}
	user, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ViewOfUser(user))
}

func (h *UserHandler) Profile(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ViewOfUser(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, err := h.Users.UpdateProfile(c.Request().Context(), userID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ViewOfUser(user))
}

func (h *UserHandler) ToggleBan(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid user id")
	}
	user, err := h.Users.ToggleBan(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.ViewOfUser(user))
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid user id")
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
